package usecase

import "time"

const (
	slotStep      = 15 * time.Minute
	slotLeadTime  = 45 * time.Minute
	slotLastHour  = 23
	slotLastMin   = 45
	slotTimeFrame = "15:04"
)

// GenerateSlots возвращает слоты доставки на сегодня в формате "HH:MM".
// Первый слот: now+45 минут с округлением вверх до 15 минут. Последний: 23:45 того же дня.
// Если первый слот позже последнего, список пуст.
func GenerateSlots(now time.Time) []string {
	upper := time.Date(now.Year(), now.Month(), now.Day(), slotLastHour, slotLastMin, 0, 0, now.Location())

	lower := ceilToStep(now.Add(slotLeadTime), slotStep)
	if lower.After(upper) {
		return []string{}
	}

	slots := make([]string, 0, int(upper.Sub(lower)/slotStep)+1)
	for t := lower; !t.After(upper); t = t.Add(slotStep) {
		slots = append(slots, t.Format(slotTimeFrame))
	}

	return slots
}

// ceilToStep округляет вверх по настенным часам. Результат собирается из полей локального
// времени, а не прибавлением длительности к полуночи: в день перевода часов сутки не равны 24 часам.
func ceilToStep(t time.Time, step time.Duration) time.Time {
	stepMin := int(step / time.Minute)
	if t.Minute()%stepMin == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t
	}

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), (t.Minute()/stepMin+1)*stepMin, 0, 0, t.Location())
}

// isValidSlot проверяет, что значение совпадает с одним из сгенерированных слотов.
func isValidSlot(value string, now time.Time) bool {
	for _, s := range GenerateSlots(now) {
		if s == value {
			return true
		}
	}

	return false
}
