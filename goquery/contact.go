package goquery

import (
	"regexp"
	"strings"

	"brandsight"

	"github.com/PuerkitoBio/goquery"
)

// Caps on extracted contact details.
const (
	maxEmails = 5
	maxPhones = 3
)

var contactSectionRe = regexp.MustCompile(`(?i)(contact|footer|about)`)

var emailRe = regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)

// phoneRes are applied in sequence and their matches unioned: US format
// with optional country code and parentheses, generic international,
// dashed US, and bare 10 digits.
var phoneRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:\+\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`),
	regexp.MustCompile(`\+\d{1,3}[\s.-]?\d{1,4}[\s.-]?\d{1,4}[\s.-]?\d{1,9}`),
	regexp.MustCompile(`\b\d{3}[\s.-]?\d{3}[\s.-]?\d{4}\b`),
	regexp.MustCompile(`\b\d{10}\b`),
}

var nonDigitRe = regexp.MustCompile(`\D`)

// ContactDetails extracts emails and phone numbers from the page.
//
// Text is gathered from sections whose class suggests contact content
// (contact, footer, about) plus the full document text. Emails are
// lowercased; phone matches are kept only when their digit-only form has
// at least 10 digits. Both lists are deduplicated in first-discovered
// order and capped.
func (e *Extractor) ContactDetails(html string) (*brandsight.ContactDetails, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	var texts []string
	doc.Find("section, div").Each(func(_ int, sel *goquery.Selection) {
		class, ok := sel.Attr("class")
		if ok && contactSectionRe.MatchString(class) {
			texts = append(texts, sel.Text())
		}
	})
	texts = append(texts, doc.Text())
	allText := strings.Join(texts, " ")

	return &brandsight.ContactDetails{
		Emails:       extractEmails(allText),
		PhoneNumbers: extractPhones(allText),
	}, nil
}

func extractEmails(text string) []string {
	var emails []string
	seen := make(map[string]bool)

	for _, match := range emailRe.FindAllString(text, -1) {
		email := strings.ToLower(match)
		if seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
		if len(emails) == maxEmails {
			break
		}
	}
	return emails
}

func extractPhones(text string) []string {
	var phones []string
	seen := make(map[string]bool)

	for _, re := range phoneRes {
		for _, match := range re.FindAllString(text, -1) {
			phone := strings.TrimSpace(match)
			if len(nonDigitRe.ReplaceAllString(phone, "")) < 10 {
				continue
			}
			if seen[phone] {
				continue
			}
			seen[phone] = true
			phones = append(phones, phone)
		}
	}

	if len(phones) > maxPhones {
		phones = phones[:maxPhones]
	}
	return phones
}
