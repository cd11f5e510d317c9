package models

// Settings is the establishment configuration screen, persisted as a single
// record under the settings key.
type Settings struct {
	Establishment EstablishmentInfo `json:"establishment"`
	Hours         OpeningHours      `json:"hours"`
	Payments      PaymentMethods    `json:"payments"`
	Notifications NotificationPrefs `json:"notifications"`
}

type EstablishmentInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OpeningHours struct {
	Weekdays   string `json:"weekdays"`
	Weekends   string `json:"weekends"`
	ClosedDays string `json:"closed_days"`
}

type PaymentMethods struct {
	Pix            bool `json:"pix"`
	CardOnDelivery bool `json:"card_on_delivery"`
	Cash           bool `json:"cash"`
}

type NotificationPrefs struct {
	NewOrder    bool `json:"new_order"`
	Chat        bool `json:"chat"`
	DailyReport bool `json:"daily_report"`
}
