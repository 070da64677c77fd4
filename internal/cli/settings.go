package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/okarpushin/otpdesk/internal/models"
)

// Settings prints the current settings record.
func (a *App) Settings(ctx context.Context) error {
	s := a.svc.Settings()
	printlnFn(fmt.Sprintf("length: %d", s.Length))
	printlnFn(fmt.Sprintf("type: %s", s.Type))
	printlnFn(fmt.Sprintf("batch: %d", s.BatchCount))
	printlnFn(fmt.Sprintf("expiry: %d min (0 = never)", s.ExpiryMinutes))
	printlnFn(fmt.Sprintf("autorefresh: %t", s.AutoRefresh))
	printlnFn(fmt.Sprintf("sound: %t", s.SoundEnabled))
	return nil
}

// Set changes one setting: set <name> <value>. The updated record is
// normalized and persisted by the manager.
func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: set <length|type|batch|expiry|autorefresh|sound> <value>")
		return fmt.Errorf("wrong argument count: %d", len(args))
	}
	name, value := args[0], args[1]

	mutate, err := settingMutation(name, value)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	updated := a.svc.UpdateSettings(ctx, mutate)
	printlnFn(fmt.Sprintf("%s is now %s", name, settingValue(name, updated)))
	return nil
}

// Auto toggles the auto-refresh run flag.
func (a *App) Auto(ctx context.Context) error {
	if a.svc.ToggleAuto() {
		printlnFn("Auto mode on: expired codes regenerate when autorefresh is enabled")
	} else {
		printlnFn("Auto mode off")
	}
	return nil
}

func settingMutation(name, value string) (func(*models.Settings), error) {
	switch name {
	case "length":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("length must be one of %v", models.CodeLengths)
		}
		return func(s *models.Settings) { s.Length = n }, nil

	case "type":
		t := models.CodeType(value)
		if !t.Valid() {
			return nil, fmt.Errorf("type must be %s or %s", models.CodeTypeNumeric, models.CodeTypeAlphanumeric)
		}
		return func(s *models.Settings) { s.Type = t }, nil

	case "batch":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("batch must be %d..%d", models.MinBatchCount, models.MaxBatchCount)
		}
		return func(s *models.Settings) { s.BatchCount = n }, nil

	case "expiry":
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("expiry must be minutes, 0 disables")
		}
		return func(s *models.Settings) { s.ExpiryMinutes = n }, nil

	case "autorefresh":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("autorefresh must be true or false")
		}
		return func(s *models.Settings) { s.AutoRefresh = b }, nil

	case "sound":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("sound must be true or false")
		}
		return func(s *models.Settings) { s.SoundEnabled = b }, nil

	default:
		return nil, fmt.Errorf("unknown setting: %s", name)
	}
}

func settingValue(name string, s models.Settings) string {
	switch name {
	case "length":
		return strconv.Itoa(s.Length)
	case "type":
		return string(s.Type)
	case "batch":
		return strconv.Itoa(s.BatchCount)
	case "expiry":
		return strconv.Itoa(s.ExpiryMinutes)
	case "autorefresh":
		return strconv.FormatBool(s.AutoRefresh)
	case "sound":
		return strconv.FormatBool(s.SoundEnabled)
	default:
		return ""
	}
}
