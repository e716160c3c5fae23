package campus

import (
	"encoding/json"
	"net/http"

	"github.com/chlohilt/byu-oit-technical-challenge-chilton/internal/errs"
)

// Identity is the slice of the persons API this program needs.
type Identity struct {
	PreferredName string
	PersonID      string
	ByuID         string
}

// LookupPerson resolves a BYU ID into a person record, verifying the API key
// along the way.
func (c *Client) LookupPerson(apiKey, byuID string) (*Identity, error) {
	req, err := http.NewRequest(http.MethodGet, c.cfg.API.PersonsURL+"/"+byuID, nil)
	if err != nil {
		return nil, errs.Transport(err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Transport(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return nil, errs.Upstream("it looks like you are not subscribed to the Persons - v3 API; please subscribe and try again")
	case http.StatusUnauthorized:
		return nil, errs.Upstream("it looks like you have inputted an incorrect API key; please try again")
	case http.StatusNotFound:
		return nil, errs.Upstream("that resource is not available; you may have inputted an incorrect BYU ID")
	default:
		return nil, errs.Upstream("the Persons API rejected the request")
	}

	var result struct {
		Basic struct {
			PreferredName struct {
				Value string `json:"value"`
			} `json:"preferred_name"`
			PersonID struct {
				Value string `json:"value"`
			} `json:"person_id"`
		} `json:"basic"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errs.Upstream("the Persons API returned an unreadable response")
	}

	return &Identity{
		PreferredName: result.Basic.PreferredName.Value,
		PersonID:      result.Basic.PersonID.Value,
		ByuID:         byuID,
	}, nil
}
