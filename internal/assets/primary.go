package assets

// PrimaryURL picks the link a download button should point at. Windows
// prefers the installer, then the zip bundle, then the raw binary; mac and
// linux prefer the tarball, then the raw binary.
func PrimaryURL(o DownloadOption) string {
	url, _ := primary(o)
	return url
}

// PrimaryName is the file name behind PrimaryURL.
func PrimaryName(o DownloadOption) string {
	_, name := primary(o)
	return name
}

// PrimarySize is the size in bytes of the file behind PrimaryURL, 0 if unknown.
func PrimarySize(o DownloadOption) int64 {
	if o.Platform == Windows && o.HasInstaller() {
		return o.InstallerSize
	}
	return o.Size
}

func primary(o DownloadOption) (string, string) {
	if o.Platform == Windows && o.HasInstaller() {
		return o.InstallerURL, o.InstallerName
	}
	if o.HasArchive() {
		return o.ArchiveURL, o.ArchiveName
	}
	return o.DownloadURL, o.BinaryName
}
