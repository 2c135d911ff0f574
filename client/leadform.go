package client

import (
	"context"
	"errors"
	"net/url"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// LeadForm mirrors the registration form fields. Broker fields are only
// required when BrokerAssisted is set.
type LeadForm struct {
	FirstName        string
	LastName         string
	CountryResidence string
	PhoneCountryCode string
	PhoneNumber      string
	Email            string
	BedroomsChoice   string
	BuyTimeline      string
	BuyPurpose       string
	BrokerAssisted   bool
	BrokerType       string
	BrokerAgency     string
	Consent          bool
	Message          string
}

// Validate returns per-field error messages. An empty map means the form can
// be submitted.
func (f *LeadForm) Validate() map[string]string {
	fieldErrors := make(map[string]string)

	if len(f.FirstName) < 2 {
		fieldErrors["firstName"] = "First name must be at least 2 characters."
	}
	if len(f.LastName) < 2 {
		fieldErrors["lastName"] = "Last name must be at least 2 characters."
	}
	if f.CountryResidence == "" {
		fieldErrors["countryResidence"] = "Please select your country of residence."
	}
	if f.PhoneCountryCode == "" {
		fieldErrors["phoneCountryCode"] = "Please select a country code."
	}
	if len(f.PhoneNumber) < 7 {
		fieldErrors["phoneNumber"] = "Phone number must be at least 7 digits."
	}
	if !emailPattern.MatchString(f.Email) {
		fieldErrors["email"] = "Please enter a valid email address."
	}
	if f.BedroomsChoice == "" {
		fieldErrors["bedroomsChoice"] = "Please select your preferred number of bedrooms."
	}
	if f.BuyTimeline == "" {
		fieldErrors["buyTimeline"] = "Please select your buying timeline."
	}
	if f.BuyPurpose == "" {
		fieldErrors["buyPurpose"] = "Please select your buying purpose."
	}
	if f.BrokerAssisted {
		if f.BrokerType == "" {
			fieldErrors["brokerType"] = "Please select a broker type."
		}
		if f.BrokerAgency == "" {
			fieldErrors["brokerAgency"] = "Please select a broker agency."
		}
	}
	if !f.Consent {
		fieldErrors["consent"] = "You must consent to receive communications."
	}

	return fieldErrors
}

func (f *LeadForm) Reset() {
	*f = LeadForm{}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// utmParams pulls the utm_* query parameters off the current page URL.
// Absent parameters stay null in the payload.
func utmParams(pageURL string) map[string]*string {
	params := map[string]*string{
		"utmSource":   nil,
		"utmMedium":   nil,
		"utmCampaign": nil,
		"utmTerm":     nil,
		"utmContent":  nil,
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return params
	}
	q := u.Query()
	params["utmSource"] = optional(q.Get("utm_source"))
	params["utmMedium"] = optional(q.Get("utm_medium"))
	params["utmCampaign"] = optional(q.Get("utm_campaign"))
	params["utmTerm"] = optional(q.Get("utm_term"))
	params["utmContent"] = optional(q.Get("utm_content"))
	return params
}

// SubmitLeadForm validates, merges campaign attribution from the page URL and
// posts the registration. On success the form is cleared and the new lead id
// returned; a non-OK response surfaces the server's error message.
func (c *Client) SubmitLeadForm(ctx context.Context, form *LeadForm, pageURL string) (string, error) {
	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		return "", errors.New("form has validation errors")
	}

	utm := utmParams(pageURL)
	payload := map[string]interface{}{
		"firstName":        form.FirstName,
		"lastName":         form.LastName,
		"countryResidence": form.CountryResidence,
		"phoneCountryCode": form.PhoneCountryCode,
		"phoneNumber":      form.PhoneNumber,
		"email":            form.Email,
		"bedroomsChoice":   form.BedroomsChoice,
		"buyTimeline":      form.BuyTimeline,
		"buyPurpose":       form.BuyPurpose,
		"brokerAssisted":   form.BrokerAssisted,
		"brokerType":       optional(form.BrokerType),
		"brokerAgency":     optional(form.BrokerAgency),
		"consent":          form.Consent,
		"message":          optional(form.Message),
		"utmSource":        utm["utmSource"],
		"utmMedium":        utm["utmMedium"],
		"utmCampaign":      utm["utmCampaign"],
		"utmTerm":          utm["utmTerm"],
		"utmContent":       utm["utmContent"],
	}

	var result struct {
		OK     bool   `json:"ok"`
		LeadID string `json:"leadId"`
	}
	if err := c.doJSON(ctx, "POST", "/leads-post", payload, &result); err != nil {
		return "", err
	}

	form.Reset()
	return result.LeadID, nil
}
