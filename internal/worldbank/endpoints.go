package worldbank

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// countryListPageSize fetches the whole country catalog in one page.
const countryListPageSize = 300

func (c *Client) countriesURL() string {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("per_page", fmt.Sprint(countryListPageSize))

	return c.baseURL + "/country?" + q.Encode()
}

// indicatorURL builds the windowed indicator query for one country.
func (c *Client) indicatorURL(countryCode, indicatorCode string, now time.Time) string {
	from, to := window(now, c.windowYears)

	q := url.Values{}
	q.Set("format", "json")
	q.Set("date", fmt.Sprintf("%d:%d", from, to))
	q.Set("per_page", fmt.Sprint(c.pageSize))

	return fmt.Sprintf("%s/country/%s/indicator/%s?%s",
		c.baseURL,
		url.PathEscape(strings.ToLower(countryCode)),
		url.PathEscape(indicatorCode),
		q.Encode(),
	)
}

// window returns the trailing range of complete calendar years ending the
// year before now.
func window(now time.Time, years int) (int, int) {
	if years < 1 {
		years = 1
	}

	to := now.Year() - 1

	return to - years + 1, to
}
