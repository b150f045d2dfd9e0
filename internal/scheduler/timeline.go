package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/meetsync/internal/models"
)

// DatetimeMode — тип заявки участника.
type DatetimeMode string

const (
	ModeFree DatetimeMode = "FREE"
	ModeBusy DatetimeMode = "BUSY"
)

const (
	FreeColor = "#00FF00"
	BusyColor = "#FF0000"
)

// ModeColor — полное отображение режима в цвет. Неизвестный режим — это
// ошибка, а не пустая отрисовка.
func ModeColor(mode DatetimeMode) (string, error) {
	switch mode {
	case ModeFree:
		return FreeColor, nil
	case ModeBusy:
		return BusyColor, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
}

// ParseMode проверяет режим из пользовательского ввода.
func ParseMode(raw string) (DatetimeMode, error) {
	mode := DatetimeMode(raw)
	if _, err := ModeColor(mode); err != nil {
		return "", err
	}
	return mode, nil
}

// HalfBlock — половина визуального блока диапазона: верхняя для начала,
// нижняя для конца. Обе окрашены цветом режима диапазона.
type HalfBlock struct {
	RangeID   uuid.UUID    `json:"range_id"`
	Position  string       `json:"position"` // start | end
	Timestamp time.Time    `json:"timestamp"`
	Mode      DatetimeMode `json:"mode"`
	Color     string       `json:"color"`
}

// TimelineRow — строка таймлайна одного участника.
type TimelineRow struct {
	AttendeeID   uuid.UUID   `json:"attendee_id"`
	AttendeeName string      `json:"attendee_name"`
	IsHost       bool        `json:"is_host"`
	TimeZone     string      `json:"time_zone"`
	Blocks       []HalfBlock `json:"blocks"`
}

// BuildTimeline строит по строке на каждого участника комнаты. Чистая
// проекция: одни и те же входные данные всегда дают одинаковый результат.
// Диапазоны участника сортируются по убыванию начала, при равенстве
// сохраняется порядок добавления — так исторически рисуется таймлайн.
func BuildTimeline(room *models.Room, attendees []models.Attendee, ranges []models.TimeRange) ([]TimelineRow, error) {
	byAttendee := make(map[uuid.UUID][]models.TimeRange, len(attendees))
	for _, r := range ranges {
		byAttendee[r.AttendeeID] = append(byAttendee[r.AttendeeID], r)
	}

	rows := make([]TimelineRow, 0, len(attendees))
	for _, attendee := range attendees {
		attendeeRanges := byAttendee[attendee.ID]
		sort.SliceStable(attendeeRanges, func(i, j int) bool {
			return attendeeRanges[i].StartUTC.After(attendeeRanges[j].StartUTC)
		})

		blocks := make([]HalfBlock, 0, len(attendeeRanges)*2)
		for _, tr := range attendeeRanges {
			color, err := ModeColor(DatetimeMode(tr.Mode))
			if err != nil {
				return nil, err
			}

			blocks = append(blocks,
				HalfBlock{
					RangeID:   tr.ID,
					Position:  "start",
					Timestamp: tr.StartUTC,
					Mode:      DatetimeMode(tr.Mode),
					Color:     color,
				},
				HalfBlock{
					RangeID:   tr.ID,
					Position:  "end",
					Timestamp: tr.EndUTC,
					Mode:      DatetimeMode(tr.Mode),
					Color:     color,
				},
			)
		}

		rows = append(rows, TimelineRow{
			AttendeeID:   attendee.ID,
			AttendeeName: attendee.Name,
			IsHost:       attendee.IsHost,
			TimeZone:     room.TimeZone,
			Blocks:       blocks,
		})
	}

	return rows, nil
}
