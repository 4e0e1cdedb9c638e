package domain

// SeedProducts returns the demo catalog the store starts with.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Подшипник барабана стиральной машины",
			Description: "Высокопрочный подшипник для стиральных машин различных марок. Диаметр 35мм, нержавеющая сталь.",
			Price:       2500,
			Category:    "Стиральные машины",
			Image:       "/img/d8efcfc2-6ee3-4308-bc87-512364ea7177.jpg",
			Specifications: []string{
				"Диаметр: 35мм", "Материал: нержавеющая сталь", "Тип: шариковый", "Производитель: SKF",
			},
			InStock: true,
		},
		{
			ID:          2,
			Name:        "Компрессор холодильника",
			Description: "Компрессор для бытовых холодильников мощностью 150W. Совместим с большинством моделей.",
			Price:       8900,
			Category:    "Холодильники",
			Image:       "/img/6fa180ed-d126-4638-addd-7a969d92e7ae.jpg",
			Specifications: []string{
				"Мощность: 150W", "Хладагент: R134a", "Напряжение: 220V", "Производитель: Embraco",
			},
			InStock: true,
		},
		{
			ID:          3,
			Name:        "Магнетрон микроволновой печи",
			Description: "Магнетрон мощностью 800W для микроволновых печей. Универсальная модель.",
			Price:       3200,
			Category:    "Микроволновые печи",
			Image:       "/img/76c66b7c-4c47-43c8-ac12-18b95e428657.jpg",
			Specifications: []string{
				"Мощность: 800W", "Частота: 2.45GHz", "Антенна: керамическая", "Производитель: LG",
			},
			InStock: false,
		},
	}
}

// SeedOrders returns the demo order book. Order ids are seeded from a range
// distinct from product ids but share the same numeric space.
func SeedOrders() []Order {
	return []Order{
		{
			ID:              1001,
			ProductIDs:      []int64{1},
			CustomerName:    "Иванов Петр Сергеевич",
			CustomerPhone:   "+7 (910) 123-45-67",
			CustomerAddress: "г. Москва, ул. Ленина, д. 25, кв. 42",
			TotalPrice:      2500,
			Status:          StatusShipped,
			DeliveryService: "СДЭК",
			TrackingNumber:  "CD123456789RU",
			OrderDate:       "2024-09-08 14:30",
			ShippedDate:     "2024-09-09 10:15",
			DeliveryDate:    "2024-09-11",
		},
		{
			ID:              1002,
			ProductIDs:      []int64{2},
			CustomerName:    "Сидорова Мария Ивановна",
			CustomerPhone:   "+7 (985) 987-65-43",
			CustomerAddress: "г. СПб, пр. Невский, д. 120, кв. 8",
			TotalPrice:      8900,
			Status:          StatusProcessing,
			DeliveryService: "Почта России",
			TrackingNumber:  "RA456789123RU",
			OrderDate:       "2024-09-09 16:45",
		},
		{
			ID:              1003,
			ProductIDs:      []int64{1, 2},
			CustomerName:    "Козлов Александр Петрович",
			CustomerPhone:   "+7 (903) 555-11-22",
			CustomerAddress: "г. Казань, ул. Баумана, д. 45",
			TotalPrice:      11400,
			Status:          StatusDelivered,
			DeliveryService: "Boxberry",
			TrackingNumber:  "BB987654321RU",
			OrderDate:       "2024-09-05 11:20",
			ShippedDate:     "2024-09-06 09:30",
			DeliveryDate:    "2024-09-08",
		},
	}
}

// DefaultProfile returns the compiled-in store profile used until a saved one
// is loaded from the settings store.
func DefaultProfile() StoreProfile {
	return StoreProfile{
		Name:         "TechParts Store",
		Phone:        "+7 (495) 123-45-67",
		Address:      "г. Москва, ул. Техническая, д. 15",
		WorkingHours: "Пн-Пт: 9:00-18:00, Сб: 10:00-16:00",
		Description:  "Профессиональные запчасти для бытовой техники. Гарантия качества и быстрая доставка.",
	}
}
