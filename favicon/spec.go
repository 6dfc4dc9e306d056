package favicon

// IconSpec pairs an output PNG filename with its square pixel size.
type IconSpec struct {
	Size int
	Name string
}

// Output filenames that are not part of the PNG table.
const (
	AppleTouchIcon = "apple-touch-icon.png"
	FaviconICO     = "favicon.ico"
	WebManifest    = "site.webmanifest"
	ManifestJSON   = "manifest.json"
	BrowserConfig  = "browserconfig.xml"
	Readme         = "README.txt"
)

const (
	appleTouchSource = "apple-icon-180x180.png"
	appleTouchSize   = 180
	maskableIcon     = "android-icon-512x512.png"
	maxManifestSize  = 512
	minWorkingSize   = 1024
)

// Standard favicon, Apple, Android and Microsoft tile sizes.
// Order is the manifest order.
var iconSpecs = [...]IconSpec{
	{16, "favicon-16x16.png"},
	{32, "favicon-32x32.png"},
	{48, "favicon-48x48.png"},
	{57, "apple-icon-57x57.png"},
	{60, "apple-icon-60x60.png"},
	{72, "apple-icon-72x72.png"},
	{76, "apple-icon-76x76.png"},
	{96, "android-icon-96x96.png"},
	{114, "apple-icon-114x114.png"},
	{120, "apple-icon-120x120.png"},
	{128, "android-icon-128x128.png"},
	{144, "android-icon-144x144.png"},
	{152, "apple-icon-152x152.png"},
	{167, "apple-icon-167x167.png"},
	{180, "apple-icon-180x180.png"},
	{192, "android-icon-192x192.png"},
	{256, "android-icon-256x256.png"},
	{384, "android-icon-384x384.png"},
	{512, "android-icon-512x512.png"},
	{1024, "apple-icon-1024x1024.png"},
	{150, "ms-icon-150x150.png"},
	{32, "ms-icon-32x32.png"},
	{70, "ms-icon-70x70.png"},
	{310, "ms-icon-310x310.png"},
}

var icoSizes = [...]int{16, 32, 48, 64, 128, 256}

// Specs returns a copy of the PNG icon table.
func Specs() []IconSpec {
	specs := make([]IconSpec, len(iconSpecs))
	copy(specs, iconSpecs[:])
	return specs
}

// ICOSizes returns the square sizes embedded in favicon.ico.
func ICOSizes() []int {
	sizes := make([]int, len(icoSizes))
	copy(sizes, icoSizes[:])
	return sizes
}
