package update_status

// Result результат одного прохода обновления статусов
type Result struct {
	Scanned int // Сколько записей попало в выборку
	Updated int // Для скольких записей статус установлен и флаг зафиксирован
}
