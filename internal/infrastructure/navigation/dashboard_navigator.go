package navigation

import (
	"net/url"
	"strings"

	"vitrine/internal/usecase/interfaces"
)

// DashboardNavigator points the provider back at their dashboard after a
// successful submission.
type DashboardNavigator struct {
	baseURL string
}

var _ interfaces.INavigator = (*DashboardNavigator)(nil)

func NewDashboardNavigator(baseURL string) *DashboardNavigator {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "/provider/dashboard"
	}
	return &DashboardNavigator{baseURL: baseURL}
}

// ProviderDashboard appends the provider id as a query parameter, keeping any
// query the base URL already has.
func (n *DashboardNavigator) ProviderDashboard(providerID string) string {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return n.baseURL
	}

	u, err := url.Parse(n.baseURL)
	if err != nil {
		return n.baseURL
	}
	q := u.Query()
	q.Set("provider", providerID)
	u.RawQuery = q.Encode()
	return u.String()
}
