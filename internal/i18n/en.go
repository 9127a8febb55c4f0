package i18n

var en = table{
	NavHome:         "Home",
	NavFeatures:     "Features",
	NavInstallation: "Installation",
	NavUsage:        "Usage",
	NavDownload:     "Download",
	NavPress:        "Press",

	HeroTagline:     "Anime in the terminal, simple and powerful",
	HeroDescription: "A terminal anime player built in Go that lets you search, watch and download episodes directly in MPV with a smooth, modern experience.",
	HeroGithub:      "View on GitHub",
	HeroInstall:     "Install Now",

	FeaturesBadge:          "Amazing Features",
	FeaturesTitle:          "Extraordinary Experience",
	FeaturesSubtitle:       "Discover what makes GoAnime a unique tool for anime lovers",
	FeatureCLITitle:        "Elegant CLI Interface",
	FeatureCLIDesc:         "Intuitive, modern command-line interface to search and watch anime with ease.",
	FeaturePlaybackTitle:   "Direct Playback",
	FeaturePlaybackDesc:    "Play episodes directly in MPV without opening a browser or other apps.",
	FeatureFastTitle:       "Fast and Efficient",
	FeatureFastDesc:        "Built in Go for exceptional performance and minimal resource usage.",
	FeatureSourcesTitle:    "Multiple Sources",
	FeatureSourcesDesc:     "Access anime from several sources for the best quality and availability.",
	FeatureOpenSourceTitle: "Open Source",
	FeatureOpenSourceDesc:  "A fully open source project, open to community contributions and customization.",
	FeatureDownloadTitle:   "Episode Downloads",
	FeatureDownloadDesc:    "Download episodes to watch offline whenever and wherever you want, no internet connection needed.",

	InstallBadge:          "Simple Installation",
	InstallTitle:          "Get Started in Seconds",
	InstallSubtitle:       "Choose the installation method that works best for you",
	InstallUniversalTitle: "Universal Installation",
	InstallUniversalDesc:  "Recommended for most users (only Go required)",
	InstallManualTitle:    "Manual Installation",
	InstallManualDesc:     "Clone the repository and install manually",
	InstallArchTitle:      "Arch Linux (AUR)",
	InstallArchDesc:       "For Arch Linux users",
	InstallNixTitle:       "NixOS (Flakes)",
	InstallNixDesc:        "For NixOS users",
	InstallLearnMore:      "Learn more",

	UsageBadge:      "How to Use",
	UsageTitle:      "Simple and Intuitive",
	UsageSubtitle:   "Simple commands to start using GoAnime right away",
	UsageStep1Title: "Start GoAnime",
	UsageStep1Desc:  "Open your terminal and run the command to start GoAnime.",
	UsageStep2Title: "Search for your favorite anime",
	UsageStep2Desc:  "Type the name of the anime you want to watch or use direct search.",
	UsageStep3Title: "Select the anime",
	UsageStep3Desc:  "Browse the results with the arrow keys and press Enter to select.",
	UsageStep4Title: "Choose the episode",
	UsageStep4Desc:  "Pick the episode you want to watch from the list.",
	UsageStep5Title: "Enjoy!",
	UsageStep5Desc:  "The episode plays automatically in MPV. Sit back and enjoy your anime!",

	CTABadge:    "Ready to start?",
	CTATitle:    "Try GoAnime Today",
	CTASubtitle: "Join thousands of users already enjoying the best anime experience in the terminal.",

	FooterDeveloped: "Developed by",
	FooterShortcuts: "Tab Switch • Enter Focus • Ctrl+K Commands • G Language • ? Help • Q Quit",

	LanguageLabel: "Language",
	LanguagePT:    "Portuguese",
	LanguageEN:    "English",
	LanguageES:    "Spanish",

	DownloadBadge:         "Latest Release",
	DownloadTitle:         "Download GoAnime",
	DownloadSubtitle:      "Pick the build for your operating system and start watching anime in the terminal.",
	DownloadVersion:       "Version",
	DownloadPrerelease:    "pre-release",
	DownloadLoading:       "Loading release information...",
	DownloadError:         "Could not load the latest release. Please try again.",
	DownloadRetry:         "Try again",
	DownloadFile:          "File",
	DownloadSize:          "Size",
	DownloadArch:          "Architecture",
	DownloadDetected:      "your system",
	DownloadUnavailable:   "No download available",
	DownloadChecksum:      "SHA-256 checksums",
	DownloadCopied:        "Link copied: %s",
	DownloadCopyFailed:    "Clipboard unavailable: %s",
	DownloadOpening:       "Opening %s in your browser...",
	DownloadControls:      "←/→ Platform • A Architecture • C Copy • O Open • Esc Back",
	DownloadMacTitle:      "macOS",
	DownloadMacDesc:       "For Apple Silicon and Intel Macs.",
	DownloadMacButton:     "Download for macOS",
	DownloadLinuxTitle:    "Linux",
	DownloadLinuxDesc:     "For most Linux distributions.",
	DownloadLinuxButton:   "Download for Linux",
	DownloadWindowsTitle:  "Windows",
	DownloadWindowsDesc:   "Installer for Windows 10 and 11.",
	DownloadWindowsButton: "Download for Windows",
	DownloadInstructions:  "After downloading, make the file executable (macOS/Linux) or run the installer (Windows). MPV must be installed.",

	DownloadAltTitle:     "Other Methods",
	DownloadAltSubtitle:  "Prefer another way to install?",
	DownloadGithubTitle:  "GitHub Releases",
	DownloadGithubDesc:   "Browse every published version and file on GitHub.",
	DownloadGithubButton: "View Releases",
	DownloadSourceTitle:  "Build from Source",
	DownloadSourceDesc:   "Clone the repository and build it with Go.",
	DownloadSourceButton: "View Source Code",

	DownloadStepsBadge:    "Getting Started",
	DownloadStepsTitle:    "How to Install",
	DownloadStepsSubtitle: "Three steps to start watching",
	DownloadStep1Title:    "Download the file",
	DownloadStep1Desc:     "Pick the build for your system above.",
	DownloadStep2Title:    "Make it executable",
	DownloadStep2Desc:     "On macOS and Linux, give the binary execute permission.",
	DownloadStep2Command:  "chmod +x goanime",
	DownloadStep3Title:    "Run it",
	DownloadStep3Desc:     "Start GoAnime from your terminal.",
	DownloadStep3Command:  "./goanime",
	DownloadStarting:      "Starting...",
	DownloadPrompt:        "Enter the anime name:",

	PaletteGithub:       "View on GitHub",
	PaletteFeatures:     "View Features",
	PaletteInstallation: "Installation",
	PaletteUsage:        "How to Use",
	PaletteDownload:     "Download",
	PaletteLanguage:     "Change Language",
	PalettePlaceholder:  "Type a command...",
	PaletteEmpty:        "No results found",
	PaletteHint:         "↑/↓ Navigate • Enter Run • Esc Close",

	ShellFocusHint: "Press ENTER to use this page's keys",
	ShellFocused:   " [FOCUSED]",
	ShellGoodbye:   "Thanks for using GoAnime!",
	HelpTitle:      "GOANIME HELP",
	HelpNavigation: "NAVIGATION:",
	HelpSwitch:     "Switch pages",
	HelpFocus:      "Focus current page",
	HelpBack:       "Leave focused page",
	HelpCommands:   "COMMANDS:",
	HelpPalette:    "Open the command palette",
	HelpLanguage:   "Switch language",
	HelpToggle:     "Toggle this help",
	HelpLogs:       "Toggle logs overlay",
	HelpQuit:       "Quit",
	HelpPages:      "INSIDE PAGES:",
	HelpPagesDesc:  "Follow the on-screen hints for page controls",
	HelpClose:      "Press 'q' or 'Esc' to close help",
	LogTitle:       "Log Viewer",
	LogClose:       "Press 'l' to close",
	LogEmpty:       "No log entries captured yet.",
	LogError:       "Unable to read log: %v",
}
