package domain

// Order — неизменяемый снимок заказа, полученный от бэкенда за один поиск.
// Поля повторяют проводной контракт эндпоинта /api/v1/order/{id}.
type Order struct {
	OrderUID    string   `json:"order_uid" validate:"required"`
	TrackNumber string   `json:"track_number"`
	Delivery    Delivery `json:"delivery"`
	Payment     Payment  `json:"payment"`
	Items       []Item   `json:"items"`
	CustomerID  string   `json:"customer_id"`
	DeliverySrv string   `json:"delivery_service"`
	DateCreated string   `json:"date_created"`
}

// Delivery — данные получателя; пустые поля допустимы и выводятся как есть.
type Delivery struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Address string `json:"address"`
	Region  string `json:"region"`
	Email   string `json:"email"`
}

// Payment — платёжная разбивка заказа. Денежные поля приходят числами
// в десятичной форме; корректность кода валюты не гарантируется.
type Payment struct {
	Transaction  string  `json:"transaction"`
	RequestID    string  `json:"request_id"`
	Currency     string  `json:"currency"`
	Provider     string  `json:"provider"`
	Amount       float64 `json:"amount"`
	PaymentDt    int64   `json:"payment_dt"`
	Bank         string  `json:"bank"`
	DeliveryCost float64 `json:"delivery_cost"`
	GoodsTotal   float64 `json:"goods_total"`
	CustomFee    float64 `json:"custom_fee"`
}

// Item — позиция заказа. Status может быть любым целым числом.
type Item struct {
	ChrtID      int     `json:"chrt_id"`
	TrackNumber string  `json:"track_number"`
	Price       float64 `json:"price"`
	Rid         string  `json:"rid"`
	Name        string  `json:"name"`
	Sale        int     `json:"sale"`
	Size        string  `json:"size"`
	TotalPrice  float64 `json:"total_price"`
	NmID        int     `json:"nm_id"`
	Brand       string  `json:"brand"`
	Status      int     `json:"status"`
}
