package confirm_booking

import (
	"time"

	"github.com/google/uuid"
)

// Pricing тарифы за час присмотра
type Pricing struct {
	NearMetroRate float64 // Тариф рядом с метро
	StandardRate  float64 // Стандартный тариф
}

// Request модель запроса на подтверждение бронирования
type Request struct {
	FamilyID    uuid.UUID // ID профиля семьи
	ServiceID   uuid.UUID // ID услуги из каталога
	Date        time.Time // Дата бронирования (без времени)
	Hours       []int     // Запрошенные часы дня (0-23)
	IsNearMetro bool      // Адрес рядом с метро (влияет на тариф)
	Address     *string   // Адрес (опционально)
	Notes       *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          uuid.UUID // ID созданного бронирования
	FamilyID    uuid.UUID // ID профиля семьи
	CaregiverID uuid.UUID // ID профиля няни
	ServiceID   uuid.UUID // ID услуги
	BookingDate time.Time // Дата бронирования
	StartAt     time.Time // Начало окна занятости
	EndAt       time.Time // Конец окна занятости
	Hours       []int     // Часы бронирования
	Status      string    // Статус бронирования

	// Денормализованные данные
	ServiceTitle   string  // Название услуги
	IsNearMetro    bool    // Признак близости к метро
	RateApplied    float64 // Примененный тариф за час
	PriceEstimated float64 // Оценочная стоимость
	Address        *string // Адрес
	Notes          *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
