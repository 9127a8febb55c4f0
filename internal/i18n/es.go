package i18n

var es = table{
	NavHome:         "Inicio",
	NavFeatures:     "Características",
	NavInstallation: "Instalación",
	NavUsage:        "Cómo Usar",
	NavDownload:     "Descargar",
	NavPress:        "Presiona",

	HeroTagline:     "Anime en la terminal, simple y poderoso",
	HeroDescription: "Un reproductor de anime para terminal construido en Go que te permite buscar, ver y descargar episodios directamente en MPV con una experiencia fluida y moderna.",
	HeroGithub:      "Ver en GitHub",
	HeroInstall:     "Instalar Ahora",

	FeaturesBadge:          "Características Increíbles",
	FeaturesTitle:          "Experiencia Extraordinaria",
	FeaturesSubtitle:       "Descubre lo que hace de GoAnime una herramienta única para los amantes del anime",
	FeatureCLITitle:        "Interfaz CLI Elegante",
	FeatureCLIDesc:         "Interfaz de línea de comandos intuitiva y moderna para buscar y ver anime con facilidad.",
	FeaturePlaybackTitle:   "Reproducción Directa",
	FeaturePlaybackDesc:    "Reproduce episodios directamente en MPV sin abrir el navegador ni otras aplicaciones.",
	FeatureFastTitle:       "Rápido y Eficiente",
	FeatureFastDesc:        "Construido en Go para ofrecer un rendimiento excepcional y un consumo mínimo de recursos.",
	FeatureSourcesTitle:    "Múltiples Fuentes",
	FeatureSourcesDesc:     "Accede a anime de varias fuentes para garantizar la mejor calidad y disponibilidad.",
	FeatureOpenSourceTitle: "Código Abierto",
	FeatureOpenSourceDesc:  "Proyecto totalmente de código abierto, que permite contribuciones y personalizaciones de la comunidad.",
	FeatureDownloadTitle:   "Descarga de Episodios",
	FeatureDownloadDesc:    "Descarga episodios para verlos sin conexión cuando y donde quieras.",

	InstallBadge:          "Instalación Sencilla",
	InstallTitle:          "Comienza en Segundos",
	InstallSubtitle:       "Elige el método de instalación que mejor te funcione",
	InstallUniversalTitle: "Instalación Universal",
	InstallUniversalDesc:  "Recomendado para la mayoría de los usuarios (solo requiere Go)",
	InstallManualTitle:    "Instalación Manual",
	InstallManualDesc:     "Clona el repositorio e instala manualmente",
	InstallArchTitle:      "Arch Linux (AUR)",
	InstallArchDesc:       "Para usuarios de Arch Linux",
	InstallNixTitle:       "NixOS (Flakes)",
	InstallNixDesc:        "Para usuarios de NixOS",
	InstallLearnMore:      "Saber más",

	UsageBadge:      "Cómo Usar",
	UsageTitle:      "Simple e Intuitivo",
	UsageSubtitle:   "Comandos simples para empezar a usar GoAnime de inmediato",
	UsageStep1Title: "Inicia GoAnime",
	UsageStep1Desc:  "Abre tu terminal y ejecuta el comando para iniciar GoAnime.",
	UsageStep2Title: "Busca tu anime favorito",
	UsageStep2Desc:  "Escribe el nombre del anime que quieres ver o usa la búsqueda directa.",
	UsageStep3Title: "Selecciona el anime",
	UsageStep3Desc:  "Navega por los resultados con las flechas del teclado y presiona Enter para seleccionar.",
	UsageStep4Title: "Elige el episodio",
	UsageStep4Desc:  "Selecciona el episodio que quieres ver de la lista.",
	UsageStep5Title: "¡Disfruta!",
	UsageStep5Desc:  "El episodio se reproducirá automáticamente en MPV. ¡Relájate y disfruta tu anime!",

	CTABadge:    "¿Listo para empezar?",
	CTATitle:    "Prueba GoAnime Hoy",
	CTASubtitle: "Únete a miles de usuarios que ya disfrutan de la mejor experiencia de anime en la terminal.",

	FooterDeveloped: "Desarrollado por",
	FooterShortcuts: "Tab Cambiar • Enter Enfocar • Ctrl+K Comandos • G Idioma • ? Ayuda • Q Salir",

	LanguageLabel: "Idioma",
	LanguagePT:    "Portugués",
	LanguageEN:    "Inglés",
	LanguageES:    "Español",

	DownloadBadge:         "Última Versión",
	DownloadTitle:         "Descarga GoAnime",
	DownloadSubtitle:      "Elige la versión para tu sistema operativo y empieza a ver anime en la terminal.",
	DownloadVersion:       "Versión",
	DownloadPrerelease:    "pre-lanzamiento",
	DownloadLoading:       "Cargando información de la versión...",
	DownloadError:         "No se pudo cargar la última versión. Inténtalo de nuevo.",
	DownloadRetry:         "Reintentar",
	DownloadFile:          "Archivo",
	DownloadSize:          "Tamaño",
	DownloadArch:          "Arquitectura",
	DownloadDetected:      "tu sistema",
	DownloadUnavailable:   "No hay descargas disponibles",
	DownloadChecksum:      "Checksums SHA-256",
	DownloadCopied:        "Enlace copiado: %s",
	DownloadCopyFailed:    "Portapapeles no disponible: %s",
	DownloadOpening:       "Abriendo %s en el navegador...",
	DownloadControls:      "←/→ Plataforma • A Arquitectura • C Copiar • O Abrir • Esc Volver",
	DownloadMacTitle:      "macOS",
	DownloadMacDesc:       "Para Macs con Apple Silicon o Intel.",
	DownloadMacButton:     "Descargar para macOS",
	DownloadLinuxTitle:    "Linux",
	DownloadLinuxDesc:     "Para la mayoría de las distribuciones Linux.",
	DownloadLinuxButton:   "Descargar para Linux",
	DownloadWindowsTitle:  "Windows",
	DownloadWindowsDesc:   "Instalador para Windows 10 y 11.",
	DownloadWindowsButton: "Descargar para Windows",
	DownloadInstructions:  "Después de descargar, haz el archivo ejecutable (macOS/Linux) o ejecuta el instalador (Windows). Requiere MPV instalado.",

	DownloadAltTitle:     "Otros Métodos",
	DownloadAltSubtitle:  "¿Prefieres otra forma de instalar?",
	DownloadGithubTitle:  "GitHub Releases",
	DownloadGithubDesc:   "Consulta todas las versiones y archivos publicados en GitHub.",
	DownloadGithubButton: "Ver Releases",
	DownloadSourceTitle:  "Compilar desde el Código",
	DownloadSourceDesc:   "Clona el repositorio y compílalo con Go.",
	DownloadSourceButton: "Ver Código Fuente",

	DownloadStepsBadge:    "Primeros Pasos",
	DownloadStepsTitle:    "Cómo Instalar",
	DownloadStepsSubtitle: "Tres pasos para empezar a ver",
	DownloadStep1Title:    "Descarga el archivo",
	DownloadStep1Desc:     "Elige la versión para tu sistema arriba.",
	DownloadStep2Title:    "Hazlo ejecutable",
	DownloadStep2Desc:     "En macOS y Linux, da permiso de ejecución al binario.",
	DownloadStep2Command:  "chmod +x goanime",
	DownloadStep3Title:    "Ejecútalo",
	DownloadStep3Desc:     "Inicia GoAnime desde la terminal.",
	DownloadStep3Command:  "./goanime",
	DownloadStarting:      "Iniciando...",
	DownloadPrompt:        "Escribe el nombre del anime:",

	PaletteGithub:       "Ver en GitHub",
	PaletteFeatures:     "Ver Características",
	PaletteInstallation: "Instalación",
	PaletteUsage:        "Cómo Usar",
	PaletteDownload:     "Descargar",
	PaletteLanguage:     "Cambiar Idioma",
	PalettePlaceholder:  "Escribe un comando...",
	PaletteEmpty:        "No se encontraron resultados",
	PaletteHint:         "↑/↓ Navegar • Enter Ejecutar • Esc Cerrar",

	ShellFocusHint: "Presiona ENTER para usar los atajos de esta página",
	ShellFocused:   " [ENFOCADO]",
	ShellGoodbye:   "¡Gracias por usar GoAnime!",
	HelpTitle:      "AYUDA DE GOANIME",
	HelpNavigation: "NAVEGACIÓN:",
	HelpSwitch:     "Cambiar de página",
	HelpFocus:      "Enfocar la página actual",
	HelpBack:       "Salir de la página enfocada",
	HelpCommands:   "COMANDOS:",
	HelpPalette:    "Abrir la paleta de comandos",
	HelpLanguage:   "Cambiar idioma",
	HelpToggle:     "Mostrar/ocultar esta ayuda",
	HelpLogs:       "Mostrar/ocultar registros",
	HelpQuit:       "Salir",
	HelpPages:      "DENTRO DE LAS PÁGINAS:",
	HelpPagesDesc:  "Sigue las indicaciones en pantalla para los controles de cada página",
	HelpClose:      "Presiona 'q' o 'Esc' para cerrar la ayuda",
	LogTitle:       "Visor de Registros",
	LogClose:       "Presiona 'l' para cerrar",
	LogEmpty:       "Aún no hay registros.",
	LogError:       "No se pudo leer el registro: %v",
}
