package posting

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

// StackTags lists the stack tags offered as filter chips. Seed postings
// draw from this list; user postings may add free-form tags.
var StackTags = []string{
	"Go", "Java", "C#", "Python", "SQL", "Docker",
	"React", "TypeScript", "Kotlin", "Swift", "Git", "Linux",
}

// Seed returns the immutable seed catalog. Callers receive a fresh slice
// on every call; the backing postings are treated as read-only.
func Seed() []*Posting {
	return []*Posting{
		{
			ID:            "sber-backend-java-intern",
			Company:       "Сбер",
			RoleTitle:     "Java Backend Intern",
			SalaryLabel:   "от 60 000 ₽",
			SalaryMin:     intPtr(60000),
			Paid:          PaidYes,
			Format:        FormatHybrid,
			City:          CityMoscow,
			Direction:     DirBackend,
			Universities:  []string{"HSE", "MSU", "BMSTU", "MEPHI"},
			Programs:      []string{"ПИ", "ИВТ"},
			Stack:         []string{"Java", "SQL", "Git"},
			CourseMin:     intPtr(3),
			CourseMax:     intPtr(4),
			MinGPA:        floatPtr(7.0),
			Season:        "Лето 2026",
			Hot:           true,
			Duration:      "10-12 недель",
			LocationLabel: "Москва",
			PostedAt:      "2026-08-20",
			ShortPitch:    "Команда платежного ядра. Боевые задачи с первого дня и ревью от сеньоров.",
			About:         "Стажировка в команде процессинга платежей. Микросервисы на Java, высокие нагрузки, настоящий прод.",
			Responsibilities: []string{
				"Разработка фичей в микросервисах платежного ядра",
				"Покрытие кода тестами",
				"Участие в код-ревью",
			},
			Requirements: []string{
				"Java Core, коллекции, многопоточность на базовом уровне",
				"SQL: джойны и агрегаты",
			},
			NiceToHave: []string{"Spring Boot", "Docker"},
			Apply:      ApplyContact{TelegramURL: "https://t.me/sber_interns", Email: "interns@sber.example"},
		},
		{
			ID:            "tbank-frontend-react-intern",
			Company:       "Т-Банк",
			RoleTitle:     "Frontend Intern (React)",
			SalaryLabel:   "от 50 000 ₽",
			SalaryMin:     intPtr(50000),
			Paid:          PaidYes,
			Format:        FormatRemote,
			City:          CityAny,
			Direction:     DirFrontend,
			Universities:  []string{},
			Programs:      []string{},
			Stack:         []string{"React", "TypeScript", "Git"},
			CourseMin:     intPtr(2),
			Season:        "Весна 2026",
			ASAP:          true,
			Duration:      "8-10 недель",
			LocationLabel: "Удаленно",
			PostedAt:      "2026-08-27",
			ShortPitch:    "Продуктовая команда интернет-банка. Старт как можно раньше, полный ремоут.",
			About:         "Интерфейсы интернет-банка: от прототипа до прода. Менторство, еженедельные демо.",
			Responsibilities: []string{
				"Верстка и логика компонентов на React",
				"Интеграция с REST API",
			},
			Requirements: []string{"JavaScript/TypeScript", "Базовый React"},
			NiceToHave:   []string{"Redux", "Storybook"},
			Apply:        ApplyContact{TelegramURL: "https://t.me/tbank_career", Email: "career@tbank.example"},
		},
		{
			ID:            "yandex-ml-intern",
			Company:       "Яндекс",
			RoleTitle:     "ML Intern",
			SalaryLabel:   "от 80 000 ₽",
			SalaryMin:     intPtr(80000),
			Paid:          PaidYes,
			Format:        FormatOnsite,
			City:          CityMoscow,
			Direction:     DirData,
			Universities:  []string{"MSU", "MIPT", "HSE"},
			Programs:      []string{"ПМИ"},
			Stack:         []string{"Python", "SQL", "Linux"},
			CourseMin:     intPtr(3),
			CourseMax:     intPtr(4),
			MinGPA:        floatPtr(8.0),
			Season:        "Лето 2026",
			Hot:           true,
			Duration:      "12 недель",
			LocationLabel: "Москва",
			PostedAt:      "2026-08-10",
			ShortPitch:    "Ранжирование в поиске. Настоящий ML на данных миллионов пользователей.",
			About:         "Команда качества поиска. Эксперименты с моделями ранжирования, оффлайн-метрики, A/B.",
			Responsibilities: []string{
				"Подготовка датасетов и фичей",
				"Обучение и валидация моделей",
			},
			Requirements: []string{"Python, numpy/pandas", "Базовая теория вероятностей"},
			NiceToHave:   []string{"PyTorch", "Kaggle"},
			Apply:        ApplyContact{TelegramURL: "https://t.me/yandex_interns", Email: "interns@yandex.example"},
		},
		{
			ID:            "vk-mobile-kotlin-intern",
			Company:       "VK",
			RoleTitle:     "Android Intern (Kotlin)",
			SalaryLabel:   "от 55 000 ₽",
			SalaryMin:     intPtr(55000),
			Paid:          PaidYes,
			Format:        FormatHybrid,
			City:          CitySPb,
			Direction:     DirMobile,
			Universities:  []string{"ITMO", "SPbU", "SPbPU"},
			Programs:      []string{},
			Stack:         []string{"Kotlin", "Git"},
			CourseMin:     intPtr(2),
			CourseMax:     intPtr(4),
			Season:        "Осень 2026",
			Duration:      "10 недель",
			LocationLabel: "Санкт-Петербург",
			PostedAt:      "2026-08-25",
			ShortPitch:    "Мобильный клиент ВКонтакте. Фичи, которые увидят миллионы в первый же релиз.",
			About:         "Команда ленты. Kotlin, корутины, многомодульный проект.",
			Responsibilities: []string{
				"Разработка экранов и компонентов",
				"Исправление багов из продакшена",
			},
			Requirements: []string{"Kotlin или Java", "Основы Android SDK"},
			NiceToHave:   []string{"Jetpack Compose"},
			Apply:        ApplyContact{TelegramURL: "https://t.me/vk_team", Email: "team@vk.example"},
		},
		{
			ID:            "ozon-qa-intern",
			Company:       "Ozon",
			RoleTitle:     "QA Intern",
			SalaryLabel:   "договорная",
			Paid:          PaidYes,
			Format:        FormatHybrid,
			City:          CityMoscow,
			Direction:     DirQA,
			Universities:  []string{},
			Programs:      []string{},
			Stack:         []string{"SQL", "Python", "Git"},
			CourseMin:     intPtr(1),
			CourseMax:     intPtr(2),
			Season:        "Весна 2026",
			ASAP:          true,
			Duration:      "6-8 недель",
			LocationLabel: "Москва",
			PostedAt:      "2026-08-28",
			ShortPitch:    "Тестирование логистической платформы. Подходит младшим курсам, можно без опыта.",
			About:         "Ручное и автоматизированное тестирование сервисов логистики. Обучение автотестам с нуля.",
			Responsibilities: []string{
				"Прогон и актуализация тест-кейсов",
				"Заведение и верификация багов",
			},
			Requirements: []string{"Внимательность", "Базовый SQL"},
			NiceToHave:   []string{"pytest"},
			Apply:        ApplyContact{TelegramURL: "https://t.me/ozon_tech", Email: "tech@ozon.example"},
		},
		{
			ID:            "avito-backend-go-intern",
			Company:       "Авито",
			RoleTitle:     "Go Backend Intern",
			SalaryLabel:   "от 70 000 ₽",
			SalaryMin:     intPtr(70000),
			Paid:          PaidYes,
			Format:        FormatRemote,
			City:          CityAny,
			Direction:     DirBackend,
			Universities:  []string{},
			Programs:      []string{},
			Stack:         []string{"Go", "SQL", "Docker", "Linux"},
			CourseMin:     intPtr(3),
			MinGPA:        floatPtr(6.5),
			Season:        "Лето 2026",
			Duration:      "12 недель",
			LocationLabel: "Удаленно",
			PostedAt:      "2026-08-15",
			ShortPitch:    "Сервисы модерации объявлений на Go. Удаленка из любого города.",
			About:         "Команда антифрода. Go, PostgreSQL, очереди. Нагруженный бэкенд с метриками и алертами.",
			Responsibilities: []string{
				"Разработка обработчиков очередей",
				"Оптимизация запросов к базе",
			},
			Requirements: []string{"Основы Go или готовность быстро выучить", "SQL"},
			NiceToHave:   []string{"Kafka", "Grafana"},
			Apply:        ApplyContact{TelegramURL: "https://t.me/avito_tech", Email: "tech@avito.example"},
		},
		{
			ID:            "2gis-infra-intern",
			Company:       "2ГИС",
			RoleTitle:     "DevOps Intern",
			SalaryLabel:   "от 45 000 ₽",
			SalaryMin:     intPtr(45000),
			Paid:          PaidYes,
			Format:        FormatOnsite,
			City:          CityNovosibirsk,
			Direction:     DirInfra,
			Universities:  []string{"NSU"},
			Programs:      []string{},
			Stack:         []string{"Linux", "Docker", "Python"},
			CourseMin:     intPtr(2),
			CourseMax:     intPtr(4),
			Season:        "Осень 2026",
			Duration:      "10-12 недель",
			LocationLabel: "Новосибирск",
			PostedAt:      "2026-07-30",
			ShortPitch:    "Инфраструктура картографического сервиса. CI/CD, контейнеры, мониторинг.",
			About:         "Команда платформы. Сборки, пайплайны, окружения для сотен разработчиков.",
			Responsibilities: []string{
				"Поддержка CI/CD пайплайнов",
				"Автоматизация рутины скриптами",
			},
			Requirements: []string{"Linux на уровне уверенного пользователя", "Bash или Python"},
			NiceToHave:   []string{"Kubernetes", "Ansible"},
			Apply:        ApplyContact{TelegramURL: "https://t.me/2gis_tech", Email: "tech@2gis.example"},
		},
		{
			ID:            "innotech-unpaid-frontend",
			Company:       "Иннотех",
			RoleTitle:     "Frontend Trainee",
			SalaryLabel:   "неоплачиваемая",
			Paid:          PaidNo,
			Format:        FormatHybrid,
			City:          CityKazan,
			Direction:     DirFrontend,
			Universities:  []string{"INNO"},
			Programs:      []string{},
			Stack:         []string{"React", "TypeScript"},
			CourseMin:     intPtr(1),
			CourseMax:     intPtr(3),
			Season:        "Весна 2026",
			Duration:      "6 недель",
			LocationLabel: "Казань",
			PostedAt:      "2026-08-05",
			ShortPitch:    "Учебная стажировка с ментором. Для тех, кто собирает первое портфолио.",
			About:         "Внутренние инструменты. Небольшие изолированные задачи, плотное менторство, сертификат по итогам.",
			Responsibilities: []string{
				"Верстка внутренних страниц",
				"Мелкие фичи под присмотром ментора",
			},
			Requirements: []string{"HTML/CSS", "Базовый JavaScript"},
			NiceToHave:   []string{"React"},
			Apply:        ApplyContact{TelegramURL: "https://t.me/innotech_edu", Email: "edu@innotech.example"},
		},
	}
}
