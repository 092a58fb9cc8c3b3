package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURLLabel          = "url_label"
	KeyEnterURL          = "enter_url"
	KeyFetchQualities    = "fetch_qualities"
	KeyFetchingQualities = "fetching_qualities"
	KeySelectQuality     = "select_quality"
	KeyDownloadFolder    = "download_folder"
	KeyBrowse            = "browse"
	KeyDownloadProgress  = "download_progress"
	KeyDownload          = "download"
	KeyError             = "error"
	KeySuccess           = "success"
	KeyDownloadSuccess   = "download_success"
	KeyShowInFolder      = "show_in_folder"
	KeyPleaseEnterURL    = "please_enter_url"
	KeySelectFolder      = "select_folder"
	KeyInvalidFolder     = "invalid_folder"
	KeySelectQualityHint = "select_quality_hint"
	KeyNoQualities       = "no_qualities"
	KeyCouldNotFetch     = "could_not_fetch"
	KeyErrorOccurred     = "error_occurred"
	KeyBusy              = "busy"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyOpenLinkFailed    = "open_link_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YT Downloader",
		KeyURLLabel:          "YouTube URL:",
		KeyEnterURL:          "https://youtube.com/watch?v=...",
		KeyFetchQualities:    "Fetch Qualities",
		KeyFetchingQualities: "Fetching qualities...",
		KeySelectQuality:     "Select Video Quality:",
		KeyDownloadFolder:    "Download Folder:",
		KeyBrowse:            "Browse",
		KeyDownloadProgress:  "Download Progress:",
		KeyDownload:          "Download",
		KeyError:             "Error",
		KeySuccess:           "Success",
		KeyDownloadSuccess:   "Video downloaded successfully!",
		KeyShowInFolder:      "Show the file in its folder?",
		KeyPleaseEnterURL:    "Please enter a YouTube URL.",
		KeySelectFolder:      "Please select a download folder.",
		KeyInvalidFolder:     "Invalid download folder. Please select a valid directory.",
		KeySelectQualityHint: "Please fetch qualities and select one first.",
		KeyNoQualities:       "No available video qualities found.",
		KeyCouldNotFetch:     "Could not fetch qualities",
		KeyErrorOccurred:     "An error occurred",
		KeyBusy:              "Please wait for the current operation to finish.",
		KeyErrorOpeningFile:  "Error opening file",
		KeyOpenLinkFailed:    "Failed to open link",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YT Загрузчик",
		KeyURLLabel:          "Ссылка YouTube:",
		KeyEnterURL:          "https://youtube.com/watch?v=...",
		KeyFetchQualities:    "Получить качества",
		KeyFetchingQualities: "Получение качеств...",
		KeySelectQuality:     "Качество видео:",
		KeyDownloadFolder:    "Папка загрузки:",
		KeyBrowse:            "Обзор",
		KeyDownloadProgress:  "Прогресс загрузки:",
		KeyDownload:          "Скачать",
		KeyError:             "Ошибка",
		KeySuccess:           "Готово",
		KeyDownloadSuccess:   "Видео успешно загружено!",
		KeyShowInFolder:      "Показать файл в папке?",
		KeyPleaseEnterURL:    "Пожалуйста, введите ссылку YouTube.",
		KeySelectFolder:      "Пожалуйста, выберите папку загрузки.",
		KeyInvalidFolder:     "Неверная папка загрузки. Выберите существующую папку.",
		KeySelectQualityHint: "Сначала получите список качеств и выберите одно.",
		KeyNoQualities:       "Доступные качества видео не найдены.",
		KeyCouldNotFetch:     "Не удалось получить качества",
		KeyErrorOccurred:     "Произошла ошибка",
		KeyBusy:              "Дождитесь завершения текущей операции.",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyOpenLinkFailed:    "Не удалось открыть ссылку",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YT Downloader",
		KeyURLLabel:          "URL do YouTube:",
		KeyEnterURL:          "https://youtube.com/watch?v=...",
		KeyFetchQualities:    "Buscar Qualidades",
		KeyFetchingQualities: "Buscando qualidades...",
		KeySelectQuality:     "Qualidade do Vídeo:",
		KeyDownloadFolder:    "Pasta de Download:",
		KeyBrowse:            "Navegar",
		KeyDownloadProgress:  "Progresso do Download:",
		KeyDownload:          "Baixar",
		KeyError:             "Erro",
		KeySuccess:           "Sucesso",
		KeyDownloadSuccess:   "Vídeo baixado com sucesso!",
		KeyShowInFolder:      "Mostrar o arquivo na pasta?",
		KeyPleaseEnterURL:    "Por favor, digite uma URL do YouTube.",
		KeySelectFolder:      "Por favor, selecione uma pasta de download.",
		KeyInvalidFolder:     "Pasta de download inválida. Selecione um diretório válido.",
		KeySelectQualityHint: "Busque as qualidades e selecione uma primeiro.",
		KeyNoQualities:       "Nenhuma qualidade de vídeo disponível encontrada.",
		KeyCouldNotFetch:     "Não foi possível buscar as qualidades",
		KeyErrorOccurred:     "Ocorreu um erro",
		KeyBusy:              "Aguarde a operação atual terminar.",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyOpenLinkFailed:    "Falha ao abrir o link",
	}
}
