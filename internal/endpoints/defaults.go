package endpoints

// jsonRPCBlockNumber is the probe body shared by the Ethereum RPC providers.
func jsonRPCBlockNumber() BodyDocument {
	return BodyDocument{
		{Key: "jsonrpc", Value: "2.0"},
		{Key: "method", Value: "eth_blockNumber"},
		{Key: "params", Value: []any{}},
		{Key: "id", Value: 1},
	}
}

// DefaultCatalog returns the built-in endpoint table. Adding a detector type
// is a data change here (or an overlay file entry), never a code change in
// the parser or the generators.
func DefaultCatalog() *Catalog {
	return NewCatalog(map[string]EndpointTemplate{
		"openai": {
			Method:  "GET",
			URL:     "https://api.openai.com/v1/models",
			Headers: []HeaderPattern{{Name: "Authorization", Pattern: "Bearer {{var}}"}},
		},
		"telegrambottoken": {
			Method: "GET",
			URL:    "https://api.telegram.org/bot{{var}}/getMe",
		},
		"alchemy": {
			Method:  "POST",
			URL:     "https://eth-mainnet.g.alchemy.com/v2/{{var}}",
			Headers: []HeaderPattern{{Name: "Content-Type", Pattern: "application/json"}},
			Body:    jsonRPCBlockNumber(),
		},
		"infura": {
			Method:  "POST",
			URL:     "https://mainnet.infura.io/v3/{{var}}",
			Headers: []HeaderPattern{{Name: "Content-Type", Pattern: "application/json"}},
			Body:    jsonRPCBlockNumber(),
		},
		"openweather": {
			Method: "GET",
			URL:    "https://api.openweathermap.org/data/2.5/weather?q=London&appid={{var}}",
		},
		"cryptocompare": {
			Method: "GET",
			URL:    "https://min-api.cryptocompare.com/data/price?fsym=BTC&tsyms=USD&api_key={{var}}",
		},
		"weatherstack": {
			Method: "GET",
			URL:    "http://api.weatherstack.com/current?access_key={{var}}&query=London",
		},
		"flickr": {
			Method: "GET",
			URL:    "https://api.flickr.com/services/rest/?method=flickr.test.echo&api_key={{var}}&format=json&nojsoncallback=1",
		},
		"newsapi": {
			Method: "GET",
			URL:    "https://newsapi.org/v2/top-headlines?country=us&apiKey={{var}}",
		},
		"miro": {
			Method:  "GET",
			URL:     "https://api.miro.com/v1/boards",
			Headers: []HeaderPattern{{Name: "Authorization", Pattern: "Bearer {{var}}"}},
		},
		"twitchaccesstoken": {
			Method:  "GET",
			URL:     "https://id.twitch.tv/oauth2/validate",
			Headers: []HeaderPattern{{Name: "Authorization", Pattern: "OAuth {{var}}"}},
		},
		"onesignal": {
			Method:  "GET",
			URL:     "https://onesignal.com/api/v1/apps",
			Headers: []HeaderPattern{{Name: "Authorization", Pattern: "Basic {{var}}"}},
		},
		"rapidapi": {
			Method:  "GET",
			URL:     "https://rapidapi.com/api/health",
			Headers: []HeaderPattern{{Name: "X-RapidAPI-Key", Pattern: "{{var}}"}},
		},
		"snykkey": {
			Method:  "GET",
			URL:     "https://api.snyk.io/v1/user/me",
			Headers: []HeaderPattern{{Name: "Authorization", Pattern: "token {{var}}"}},
		},
		"ipstack": {
			Method: "GET",
			URL:    "http://api.ipstack.com/check?access_key={{var}}",
		},
		"fixerio": {
			Method: "GET",
			URL:    "http://data.fixer.io/api/latest?access_key={{var}}",
		},
		"sumologickey": {
			Method:  "GET",
			URL:     "https://api.sumologic.com/api/v1/users",
			Headers: []HeaderPattern{{Name: "Authorization", Pattern: "Basic {{var}}"}},
		},
		"atlassian": {
			Method:  "GET",
			URL:     "https://api.atlassian.com/me",
			Headers: []HeaderPattern{{Name: "Authorization", Pattern: "Bearer {{var}}"}},
		},
	})
}
