// Package staticdata loads the restaurant's menu and weekly schedule from
// JSON files on disk. Both are read once at startup and immutable for the
// lifetime of the process.
package staticdata

import (
	"encoding/json"
	"fmt"
	"os"

	"waiterbot/internal/core/domain/model/menu"
	"waiterbot/internal/core/domain/model/schedule"
)

type menuFile struct {
	Items []menuItemJSON `json:"items"`
}

type menuItemJSON struct {
	Name            string `json:"name"`
	Price           any    `json:"price"`
	PreparationTime string `json:"preparation_time"`
}

type hoursFile struct {
	Items map[string]dayHoursJSON `json:"items"`
}

type dayHoursJSON struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// LoadMenu reads the menu catalog from a JSON file.
// Prices are kept as display strings; numeric JSON values are formatted
// with their default representation.
func LoadMenu(path string) (menu.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return menu.Catalog{}, fmt.Errorf("read menu file: %w", err)
	}

	var file menuFile
	if err = json.Unmarshal(data, &file); err != nil {
		return menu.Catalog{}, fmt.Errorf("parse menu file: %w", err)
	}

	items := make([]menu.Item, 0, len(file.Items))
	for _, raw := range file.Items {
		item, itemErr := menu.NewItem(raw.Name, fmt.Sprint(raw.Price), raw.PreparationTime)
		if itemErr != nil {
			return menu.Catalog{}, fmt.Errorf("menu item %q: %w", raw.Name, itemErr)
		}
		items = append(items, item)
	}

	catalog, err := menu.NewCatalog(items)
	if err != nil {
		return menu.Catalog{}, fmt.Errorf("build menu catalog: %w", err)
	}

	return catalog, nil
}

// LoadOpeningHours reads the weekly schedule from a JSON file.
// Day names are kept as written in the file; lookups elsewhere match them
// exactly.
func LoadOpeningHours(path string) (schedule.Week, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return schedule.Week{}, fmt.Errorf("read opening hours file: %w", err)
	}

	var file hoursFile
	if err = json.Unmarshal(data, &file); err != nil {
		return schedule.Week{}, fmt.Errorf("parse opening hours file: %w", err)
	}

	days := make(map[string]schedule.DayHours, len(file.Items))
	for day, raw := range file.Items {
		hours, hoursErr := schedule.NewDayHours(raw.Open, raw.Close)
		if hoursErr != nil {
			return schedule.Week{}, fmt.Errorf("opening hours for %s: %w", day, hoursErr)
		}
		days[day] = hours
	}

	week, err := schedule.NewWeek(days)
	if err != nil {
		return schedule.Week{}, fmt.Errorf("build weekly schedule: %w", err)
	}

	return week, nil
}
