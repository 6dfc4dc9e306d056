package favicon

import "fmt"

const browserConfigTemplate = `<?xml version="1.0" encoding="utf-8"?>
<browserconfig>
  <msapplication>
    <tile>
      <square70x70logo src="ms-icon-70x70.png"/>
      <square150x150logo src="ms-icon-150x150.png"/>
      <square310x310logo src="ms-icon-310x310.png"/>
      <TileColor>%s</TileColor>
    </tile>
  </msapplication>
</browserconfig>
`

// BrowserConfigXML renders the Windows tile configuration. The tile color
// is inserted as is.
func BrowserConfigXML(tileColor string) []byte {
	return []byte(fmt.Sprintf(browserConfigTemplate, tileColor))
}

// ReadmeText renders the note shipped at the root of the archive.
func ReadmeText(name, themeColor string) []byte {
	return []byte(fmt.Sprintf("Generated favicons for %s\n\nAll icons are in the root of the ZIP.\nTheme color: %s\n", name, themeColor))
}
