package helper

import (
	"sort"
	"strings"

	"cinema_console/constants"
	"cinema_console/model"
)

// RoomsOfCinema keeps the rooms that belong to cinemaId.
func RoomsOfCinema(rooms []model.Room, cinemaId int) []model.Room {
	var out []model.Room
	for _, r := range rooms {
		if r.CinemaId == cinemaId {
			out = append(out, r)
		}
	}
	return out
}

// BuildTimeline lays schedules out with one resource per room. Schedules
// are matched to rooms by name; those whose room is not listed go to
// Unassigned.
func BuildTimeline(rooms []model.Room, schedules []model.Schedule) model.Timeline {
	tl := model.Timeline{Resources: make([]model.Resource, 0, len(rooms))}
	byName := make(map[string]int, len(rooms))
	for _, r := range rooms {
		tl.Resources = append(tl.Resources, model.Resource{ID: r.ID, Title: r.Name})
		byName[strings.TrimSpace(r.Name)] = r.ID
	}

	sorted := make([]model.Schedule, len(schedules))
	copy(sorted, schedules)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StartTime.Before(sorted[j].StartTime.Time) })

	for _, s := range sorted {
		ev := model.Event{ID: s.ID, Title: s.Film, Start: s.StartTime, End: s.EndTime}
		roomId, ok := byName[strings.TrimSpace(s.Room)]
		if !ok && s.RoomId > 0 {
			for _, r := range rooms {
				if r.ID == s.RoomId {
					roomId, ok = r.ID, true
					break
				}
			}
		}
		if !ok {
			tl.Unassigned = append(tl.Unassigned, ev)
			continue
		}
		ev.ResourceId = roomId
		tl.Events = append(tl.Events, ev)
	}
	return tl
}

// ScheduleDuration converts the hours/minutes fields into minutes.
func ScheduleDuration(hours, minutes int) (int, bool) {
	if hours < 0 || minutes < 0 {
		return 0, false
	}
	d := hours*60 + minutes
	return d, d > 0
}

// NormalizeStartTimes checks datetime-local values and returns them in the
// API's layout. Any blank or malformed entry fails the whole list.
func NormalizeStartTimes(values []string) ([]string, string) {
	if len(values) == 0 {
		return nil, constants.INVALID_START_TIME
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return nil, constants.INVALID_START_TIME
		}
		t, err := model.ParseDateTime(v)
		if err != nil {
			return nil, constants.INVALID_START_TIME
		}
		out = append(out, t.Time.Format("2006-01-02T15:04:05"))
	}
	return out, ""
}

// EnabledFilms keeps films that can still be scheduled.
func EnabledFilms(films []model.Film) []model.Film {
	var out []model.Film
	for _, f := range films {
		if f.Enable {
			out = append(out, f)
		}
	}
	return out
}
