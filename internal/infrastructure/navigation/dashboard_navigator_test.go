package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboardNavigator_ProviderDashboard(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		provider string
		want     string
	}{
		{name: "default base", base: "", provider: "p-1", want: "/provider/dashboard?provider=p-1"},
		{name: "absolute base", base: "https://vitrine.test/painel", provider: "p 2", want: "https://vitrine.test/painel?provider=p+2"},
		{name: "keeps existing query", base: "/painel?tab=anuncios", provider: "p-1", want: "/painel?provider=p-1&tab=anuncios"},
		{name: "blank provider", base: "/painel", provider: "  ", want: "/painel"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewDashboardNavigator(tc.base).ProviderDashboard(tc.provider))
		})
	}
}
