package i18n

// Key identifies one piece of localized copy.
type Key int

const (
	NavHome Key = iota
	NavFeatures
	NavInstallation
	NavUsage
	NavDownload
	NavPress

	HeroTagline
	HeroDescription
	HeroGithub
	HeroInstall

	FeaturesBadge
	FeaturesTitle
	FeaturesSubtitle
	FeatureCLITitle
	FeatureCLIDesc
	FeaturePlaybackTitle
	FeaturePlaybackDesc
	FeatureFastTitle
	FeatureFastDesc
	FeatureSourcesTitle
	FeatureSourcesDesc
	FeatureOpenSourceTitle
	FeatureOpenSourceDesc
	FeatureDownloadTitle
	FeatureDownloadDesc

	InstallBadge
	InstallTitle
	InstallSubtitle
	InstallUniversalTitle
	InstallUniversalDesc
	InstallManualTitle
	InstallManualDesc
	InstallArchTitle
	InstallArchDesc
	InstallNixTitle
	InstallNixDesc
	InstallLearnMore

	UsageBadge
	UsageTitle
	UsageSubtitle
	UsageStep1Title
	UsageStep1Desc
	UsageStep2Title
	UsageStep2Desc
	UsageStep3Title
	UsageStep3Desc
	UsageStep4Title
	UsageStep4Desc
	UsageStep5Title
	UsageStep5Desc

	CTABadge
	CTATitle
	CTASubtitle

	FooterDeveloped
	FooterShortcuts

	LanguageLabel
	LanguagePT
	LanguageEN
	LanguageES

	DownloadBadge
	DownloadTitle
	DownloadSubtitle
	DownloadVersion
	DownloadPrerelease
	DownloadLoading
	DownloadError
	DownloadRetry
	DownloadFile
	DownloadSize
	DownloadArch
	DownloadDetected
	DownloadUnavailable
	DownloadChecksum
	DownloadCopied
	DownloadCopyFailed
	DownloadOpening
	DownloadControls
	DownloadMacTitle
	DownloadMacDesc
	DownloadMacButton
	DownloadLinuxTitle
	DownloadLinuxDesc
	DownloadLinuxButton
	DownloadWindowsTitle
	DownloadWindowsDesc
	DownloadWindowsButton
	DownloadInstructions

	DownloadAltTitle
	DownloadAltSubtitle
	DownloadGithubTitle
	DownloadGithubDesc
	DownloadGithubButton
	DownloadSourceTitle
	DownloadSourceDesc
	DownloadSourceButton

	DownloadStepsBadge
	DownloadStepsTitle
	DownloadStepsSubtitle
	DownloadStep1Title
	DownloadStep1Desc
	DownloadStep2Title
	DownloadStep2Desc
	DownloadStep2Command
	DownloadStep3Title
	DownloadStep3Desc
	DownloadStep3Command
	DownloadStarting
	DownloadPrompt

	PaletteGithub
	PaletteFeatures
	PaletteInstallation
	PaletteUsage
	PaletteDownload
	PaletteLanguage
	PalettePlaceholder
	PaletteEmpty
	PaletteHint

	ShellFocusHint
	ShellFocused
	ShellGoodbye
	HelpTitle
	HelpNavigation
	HelpSwitch
	HelpFocus
	HelpBack
	HelpCommands
	HelpPalette
	HelpLanguage
	HelpToggle
	HelpLogs
	HelpQuit
	HelpPages
	HelpPagesDesc
	HelpClose
	LogTitle
	LogClose
	LogEmpty
	LogError

	keyCount
)

// table holds every string of one language, indexed by Key.
type table [keyCount]string
