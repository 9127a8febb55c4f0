package i18n

var pt = table{
	NavHome:         "Início",
	NavFeatures:     "Recursos",
	NavInstallation: "Instalação",
	NavUsage:        "Como Usar",
	NavDownload:     "Download",
	NavPress:        "Pressione",

	HeroTagline:     "Anime no terminal, simples e poderoso",
	HeroDescription: "Um player de anime para terminal construído em Go, que permite buscar, assistir e baixar episódios diretamente no MPV com uma experiência fluida e moderna.",
	HeroGithub:      "Ver no GitHub",
	HeroInstall:     "Instalar Agora",

	FeaturesBadge:          "Recursos Incríveis",
	FeaturesTitle:          "Experiência Extraordinária",
	FeaturesSubtitle:       "Descubra o que torna o GoAnime uma ferramenta única para os amantes de anime",
	FeatureCLITitle:        "Interface CLI Elegante",
	FeatureCLIDesc:         "Interface de linha de comando intuitiva e moderna para buscar e assistir animes com facilidade.",
	FeaturePlaybackTitle:   "Reprodução Direta",
	FeaturePlaybackDesc:    "Reproduza episódios diretamente no MPV sem precisar abrir o navegador ou outros aplicativos.",
	FeatureFastTitle:       "Rápido e Eficiente",
	FeatureFastDesc:        "Construído em Go para oferecer desempenho excepcional e consumo mínimo de recursos.",
	FeatureSourcesTitle:    "Múltiplas Fontes",
	FeatureSourcesDesc:     "Acesse animes de várias fontes para garantir a melhor qualidade e disponibilidade.",
	FeatureOpenSourceTitle: "Código Aberto",
	FeatureOpenSourceDesc:  "Projeto totalmente open source, permitindo contribuições e personalizações da comunidade.",
	FeatureDownloadTitle:   "Download de Episódios",
	FeatureDownloadDesc:    "Baixe episódios para assistir offline quando e onde quiser, sem depender de conexão com a internet.",

	InstallBadge:          "Instalação Simples",
	InstallTitle:          "Comece em Segundos",
	InstallSubtitle:       "Escolha o método de instalação que funciona melhor para você",
	InstallUniversalTitle: "Instalação Universal",
	InstallUniversalDesc:  "Recomendado para a maioria dos usuários (apenas Go necessário)",
	InstallManualTitle:    "Instalação Manual",
	InstallManualDesc:     "Clone o repositório e instale manualmente",
	InstallArchTitle:      "Arch Linux (AUR)",
	InstallArchDesc:       "Para usuários do Arch Linux",
	InstallNixTitle:       "NixOS (Flakes)",
	InstallNixDesc:        "Para usuários do NixOS",
	InstallLearnMore:      "Saiba mais",

	UsageBadge:      "Como Usar",
	UsageTitle:      "Simples e Intuitivo",
	UsageSubtitle:   "Comandos simples para começar a usar o GoAnime imediatamente",
	UsageStep1Title: "Inicie o GoAnime",
	UsageStep1Desc:  "Abra seu terminal e execute o comando para iniciar o GoAnime.",
	UsageStep2Title: "Busque seu anime favorito",
	UsageStep2Desc:  "Digite o nome do anime que deseja assistir ou use a busca direta.",
	UsageStep3Title: "Selecione o anime",
	UsageStep3Desc:  "Navegue pela lista de resultados usando as setas do teclado e pressione Enter para selecionar.",
	UsageStep4Title: "Escolha o episódio",
	UsageStep4Desc:  "Selecione o episódio que deseja assistir da lista apresentada.",
	UsageStep5Title: "Aproveite!",
	UsageStep5Desc:  "O episódio será reproduzido automaticamente no MPV. Relaxe e aproveite seu anime!",

	CTABadge:    "Pronto para começar?",
	CTATitle:    "Experimente o GoAnime Hoje",
	CTASubtitle: "Junte-se a milhares de usuários que já estão aproveitando a melhor experiência de anime no terminal.",

	FooterDeveloped: "Desenvolvido por",
	FooterShortcuts: "Tab Alternar • Enter Focar • Ctrl+K Comandos • G Idioma • ? Ajuda • Q Sair",

	LanguageLabel: "Idioma",
	LanguagePT:    "Português",
	LanguageEN:    "Inglês",
	LanguageES:    "Espanhol",

	DownloadBadge:         "Última Versão",
	DownloadTitle:         "Baixe o GoAnime",
	DownloadSubtitle:      "Escolha a versão para o seu sistema operacional e comece a assistir anime no terminal.",
	DownloadVersion:       "Versão",
	DownloadPrerelease:    "pré-lançamento",
	DownloadLoading:       "Carregando informações da versão...",
	DownloadError:         "Não foi possível carregar a versão mais recente. Tente novamente.",
	DownloadRetry:         "Tentar novamente",
	DownloadFile:          "Arquivo",
	DownloadSize:          "Tamanho",
	DownloadArch:          "Arquitetura",
	DownloadDetected:      "seu sistema",
	DownloadUnavailable:   "Nenhum download disponível",
	DownloadChecksum:      "Checksums SHA-256",
	DownloadCopied:        "Link copiado: %s",
	DownloadCopyFailed:    "Área de transferência indisponível: %s",
	DownloadOpening:       "Abrindo %s no navegador...",
	DownloadControls:      "←/→ Plataforma • A Arquitetura • C Copiar • O Abrir • Esc Voltar",
	DownloadMacTitle:      "macOS",
	DownloadMacDesc:       "Para Macs com Apple Silicon ou Intel.",
	DownloadMacButton:     "Baixar para macOS",
	DownloadLinuxTitle:    "Linux",
	DownloadLinuxDesc:     "Para a maioria das distribuições Linux.",
	DownloadLinuxButton:   "Baixar para Linux",
	DownloadWindowsTitle:  "Windows",
	DownloadWindowsDesc:   "Instalador para Windows 10 e 11.",
	DownloadWindowsButton: "Baixar para Windows",
	DownloadInstructions:  "Após o download, torne o arquivo executável (macOS/Linux) ou execute o instalador (Windows). Requer o MPV instalado.",

	DownloadAltTitle:     "Outros Métodos",
	DownloadAltSubtitle:  "Prefere outra forma de instalar?",
	DownloadGithubTitle:  "GitHub Releases",
	DownloadGithubDesc:   "Veja todas as versões e arquivos publicados no GitHub.",
	DownloadGithubButton: "Ver Releases",
	DownloadSourceTitle:  "Compilar do Código",
	DownloadSourceDesc:   "Clone o repositório e compile com Go.",
	DownloadSourceButton: "Ver Código Fonte",

	DownloadStepsBadge:    "Primeiros Passos",
	DownloadStepsTitle:    "Como Instalar",
	DownloadStepsSubtitle: "Três passos para começar a assistir",
	DownloadStep1Title:    "Baixe o arquivo",
	DownloadStep1Desc:     "Escolha a versão para o seu sistema acima.",
	DownloadStep2Title:    "Torne executável",
	DownloadStep2Desc:     "No macOS e Linux, dê permissão de execução ao binário.",
	DownloadStep2Command:  "chmod +x goanime",
	DownloadStep3Title:    "Execute",
	DownloadStep3Desc:     "Inicie o GoAnime pelo terminal.",
	DownloadStep3Command:  "./goanime",
	DownloadStarting:      "Iniciando...",
	DownloadPrompt:        "Digite o nome do anime:",

	PaletteGithub:       "Ver no GitHub",
	PaletteFeatures:     "Ver Recursos",
	PaletteInstallation: "Instalação",
	PaletteUsage:        "Como Usar",
	PaletteDownload:     "Baixar",
	PaletteLanguage:     "Mudar Idioma",
	PalettePlaceholder:  "Digite um comando...",
	PaletteEmpty:        "Nenhum resultado encontrado",
	PaletteHint:         "↑/↓ Navegar • Enter Executar • Esc Fechar",

	ShellFocusHint: "Pressione ENTER para usar os atalhos desta página",
	ShellFocused:   " [FOCADO]",
	ShellGoodbye:   "Obrigado por usar o GoAnime!",
	HelpTitle:      "AJUDA DO GOANIME",
	HelpNavigation: "NAVEGAÇÃO:",
	HelpSwitch:     "Trocar de página",
	HelpFocus:      "Focar a página atual",
	HelpBack:       "Sair da página focada",
	HelpCommands:   "COMANDOS:",
	HelpPalette:    "Abrir a paleta de comandos",
	HelpLanguage:   "Mudar idioma",
	HelpToggle:     "Mostrar/ocultar esta ajuda",
	HelpLogs:       "Mostrar/ocultar logs",
	HelpQuit:       "Sair",
	HelpPages:      "DENTRO DAS PÁGINAS:",
	HelpPagesDesc:  "Siga as dicas na tela para os controles de cada página",
	HelpClose:      "Pressione 'q' ou 'Esc' para fechar a ajuda",
	LogTitle:       "Visualizador de Logs",
	LogClose:       "Pressione 'l' para fechar",
	LogEmpty:       "Nenhum registro capturado ainda.",
	LogError:       "Não foi possível ler o log: %v",
}
