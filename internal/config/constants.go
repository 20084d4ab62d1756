package config

const (
	// DefaultDatabasePath keeps session data in memory so nothing survives a restart.
	DefaultDatabasePath = ":memory:"

	DefaultAnimationURL       = "https://assets7.lottiefiles.com/packages/lf20_x62chJ.json"
	DefaultAnimationPlayerURL = "https://unpkg.com/lottie-web@5.12.2/build/player/lottie.min.js"
	DefaultSidebarImageURL    = "https://cdn-icons-png.flaticon.com/512/2232/2232688.png"
	DefaultChartAssetsHost    = "https://go-echarts.github.io/go-echarts-assets/assets/"
)
