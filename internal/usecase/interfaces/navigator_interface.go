package interfaces

// INavigator resolves where the provider is sent once a submission succeeds.
type INavigator interface {
	ProviderDashboard(providerID string) string
}
