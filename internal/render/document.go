package render

import "github.com/example/wb-order-client/internal/format"

// Document — структурное представление заказа для области отображения.
// Содержит только готовые к показу строки, без сырых данных.
type Document struct {
	Header   Header
	Meta     []MetaItem
	Delivery Panel
	Payment  Panel
	Items    ItemsSection
}

// Header — верхний блок: заголовок, подпись, дата создания и итоговая сумма.
type Header struct {
	Title      string
	Subtitle   string
	Created    string
	TotalBadge string
}

// MetaItem — одна пара метка/значение в строке метаданных.
type MetaItem struct {
	Label string
	Value string
}

// Panel — именованная карточка из строк метка/значение.
type Panel struct {
	Title string
	Rows  []InfoRow
}

// InfoRow — строка карточки; Total выделяет итоговую строку.
type InfoRow struct {
	Label string
	Value string
	Total bool
}

// ItemsSection — таблица позиций; Count всегда равен числу строк.
type ItemsSection struct {
	Count int
	Rows  []ItemRow
}

// ItemRow — одна позиция заказа, все значения уже отформатированы.
type ItemRow struct {
	Name     string
	Brand    string
	ID       string
	Size     string
	Original string
	Sale     string
	Total    string
	Status   format.Badge
	Track    string
}
