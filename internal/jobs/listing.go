package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	UnknownCompany  = "Unknown Company"
	UnknownPosition = "Unknown Position"
)

var ErrBodyNotString = errors.New("payload body is not a string")

type Listings struct {
	Items []*Listing
}

type Listing struct {
	Company *Company `json:"company,omitempty"`
	Title   *string  `json:"title,omitempty"`
}

type Company struct {
	DisplayName *string `json:"display_name,omitempty"`
}

// UnmarshalJSON never fails: a field of an unexpected type is left nil and
// later rendered with its placeholder. Numbers are kept as their text.
func (l *Listing) UnmarshalJSON(data []byte) error {
	*l = Listing{}

	var raw struct {
		Company json.RawMessage `json:"company"`
		Title   json.RawMessage `json:"title"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	l.Title = textValue(raw.Title)

	var company struct {
		DisplayName json.RawMessage `json:"display_name"`
	}
	if len(raw.Company) > 0 && json.Unmarshal(raw.Company, &company) == nil {
		if name := textValue(company.DisplayName); name != nil {
			l.Company = &Company{DisplayName: name}
		}
	}

	return nil
}

func textValue(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		text := n.String()
		return &text
	}

	return nil
}

// payload is the API document. The deployed endpoint wraps it into an API
// Gateway proxy answer, so data may instead be found in Body as a JSON string.
type payload struct {
	Body json.RawMessage `json:"body,omitempty"`
	Data *struct {
		Results []*Listing `json:"results,omitempty"`
	} `json:"data,omitempty"`
}

func (c *Client) recommendations(ctx context.Context) (*Listings, error) {
	data, err := c.getBody(ctx, c.APIURL)
	if err != nil {
		return nil, err
	}

	listings, err := parseListings(data)
	if err != nil {
		return nil, fmt.Errorf("parsing recommendations: %w", err)
	}

	c.logger.Debug("parsed recommendations", zap.Int("count", listings.Len()))

	return listings, nil
}

func parseListings(data []byte) (*Listings, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	if len(p.Body) > 0 && string(p.Body) != "null" {
		var body string
		if err := json.Unmarshal(p.Body, &body); err != nil {
			return nil, ErrBodyNotString
		}

		p = payload{}
		if err := json.Unmarshal([]byte(body), &p); err != nil {
			return nil, fmt.Errorf("decoding payload body: %w", err)
		}
	}

	listings := &Listings{}
	if p.Data != nil {
		for _, item := range p.Data.Results {
			if item == nil {
				item = &Listing{}
			}
			listings.Items = append(listings.Items, item)
		}
	}

	return listings, nil
}

func (l *Listing) CompanyName() string {
	if l.Company == nil || l.Company.DisplayName == nil {
		return UnknownCompany
	}
	return *l.Company.DisplayName
}

func (l *Listing) Position() string {
	if l.Title == nil {
		return UnknownPosition
	}
	return *l.Title
}

// Label renders the listing as "company - title".
func (l *Listing) Label() string {
	return fmt.Sprintf("%s - %s", l.CompanyName(), l.Position())
}

func (l *Listings) Len() int {
	return len(l.Items)
}

func (l *Listings) Labels() []string {
	labels := make([]string, 0, l.Len())
	for _, item := range l.Items {
		labels = append(labels, item.Label())
	}
	return labels
}

// Top returns at most n first listings. Non-positive n returns an empty list.
func (l *Listings) Top(n int) *Listings {
	if n <= 0 {
		return &Listings{}
	}
	if n > l.Len() {
		n = l.Len()
	}
	return &Listings{Items: l.Items[:n]}
}
