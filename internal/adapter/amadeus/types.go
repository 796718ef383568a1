package amadeus

// Wire types for the Amadeus self-service APIs. Only the fields the
// normalizer reads are mapped; everything else in the payload is ignored.

// tokenResponse is the OAuth2 client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// apiError is the error envelope returned with non-2xx responses.
type apiError struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// detail returns the first error detail, or "" when the envelope is empty.
func (e *apiError) detail() string {
	if len(e.Errors) == 0 {
		return ""
	}
	if e.Errors[0].Detail != "" {
		return e.Errors[0].Detail
	}
	return e.Errors[0].Title
}

// offersResponse is the flight-offers search envelope.
type offersResponse struct {
	Data []RawOffer `json:"data"`
}

// RawOffer is one offer as returned by the flight-offers search. Prices come
// back as strings and durations in ISO 8601 form; normalization converts both.
type RawOffer struct {
	ID                     string         `json:"id"`
	ValidatingAirlineCodes []string       `json:"validatingAirlineCodes"`
	Price                  rawPrice       `json:"price"`
	Itineraries            []rawItinerary `json:"itineraries"`
}

type rawPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

type rawItinerary struct {
	Duration string       `json:"duration"`
	Segments []rawSegment `json:"segments"`
}

type rawSegment struct {
	Departure   rawEndpoint `json:"departure"`
	Arrival     rawEndpoint `json:"arrival"`
	CarrierCode string      `json:"carrierCode"`
	Number      string      `json:"number"`
}

type rawEndpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

// locationsResponse is the airport/city reference-data envelope.
type locationsResponse struct {
	Data []rawLocation `json:"data"`
}

type rawLocation struct {
	ID       string `json:"id"`
	IATACode string `json:"iataCode"`
	Name     string `json:"name"`
	Address  struct {
		CityName    string `json:"cityName"`
		CountryCode string `json:"countryCode"`
	} `json:"address"`
}
