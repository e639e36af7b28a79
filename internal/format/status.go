package format

import "fmt"

// Классы оформления статусных меток.
const (
	ClassAccepted = "status-202"
	ClassPending  = "status-pending"
)

// Badge — оформленная метка статуса позиции заказа.
type Badge struct {
	Class string
	Label string
}

var statusMap = map[int]Badge{
	202: {Class: ClassAccepted, Label: "Accepted"},
	200: {Class: ClassPending, Label: "Processing"},
	404: {Class: ClassPending, Label: "Pending"},
}

// Status тотальна: любой целый код получает метку, неизвестные коды
// попадают в общий «ожидающий» класс с кодом в тексте.
func Status(code int) Badge {
	if b, ok := statusMap[code]; ok {
		return b
	}
	return Badge{Class: ClassPending, Label: fmt.Sprintf("Status %d", code)}
}
