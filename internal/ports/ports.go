package ports

// ApplicationPorts is the set of adapters the dependency container hands to the core
type ApplicationPorts struct {
	WeatherProvider WeatherProviderManager
	WeatherCache    WeatherCache
	WeatherMetrics  WeatherMetrics
	Geocoder        ReverseGeocoder

	PreferenceStore KeyValueStore
	Display         DisplaySurface
	Map             MapDisplay

	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
}
