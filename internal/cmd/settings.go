package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/tiennsloit/get-agent-sub001/internal/config"
	"github.com/tiennsloit/get-agent-sub001/internal/domain"
	"github.com/tiennsloit/get-agent-sub001/internal/logging"
	"github.com/tiennsloit/get-agent-sub001/internal/theme"
)

// SettingsCmd shows or changes the settings screen state
type SettingsCmd struct {
	Meta    SettingsMetaCmd    `cmd:"" help:"Show settings file location and available options"`
	Presets SettingsPresetsCmd `cmd:"" help:"Replace the prompt preset list from a JSON file"`
	Section SettingsSectionCmd `cmd:"" help:"Open a settings section, or close it when omitted"`
	Set     SettingsSetCmd     `cmd:"" help:"Set an option in settings.json, or remove it when the value is omitted"`
	Show    SettingsShowCmd    `cmd:"" help:"Show the open section and prompt presets" default:"1"`
}

// SettingsShowCmd displays the settings state
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	container, err := cli.Container()
	if err != nil {
		return err
	}

	current := container.SettingStore.Get()
	if s.Format == "json" {
		return printJSON(current)
	}

	section := theme.MutedStyle.Render("none")
	if current.ActiveSection != nil {
		section = string(*current.ActiveSection)
	}
	fmt.Println(theme.KeyValue("Section", section))

	if len(current.Presets) == 0 {
		fmt.Println(theme.KeyValue("Presets", theme.MutedStyle.Render("none")))
		return nil
	}
	fmt.Println(theme.LabelStyle.Render("Presets:"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNAME\tPROMPT")
	for _, p := range current.Presets {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", p.ID, p.Name, truncate(p.Prompt, 60))
	}
	return w.Flush()
}

// SettingsSectionCmd opens or closes a section
type SettingsSectionCmd struct {
	Name string `arg:"" optional:"" help:"Section: general, prompts, models or about"`
}

// Run executes the section command
func (s *SettingsSectionCmd) Run(cli *CLI) error {
	section := domain.SettingSection(s.Name)
	if s.Name != "" && !section.Valid() {
		return fmt.Errorf("unknown settings section %q: %w", s.Name, domain.ErrInvalidInput)
	}

	container, err := cli.Container()
	if err != nil {
		return err
	}

	if s.Name == "" {
		container.SettingStore.SetActiveSection(nil)
		if err := container.SaveError(); err != nil {
			return err
		}
		fmt.Println("Settings section closed")
		return nil
	}

	container.SettingStore.SetActiveSection(&section)
	if err := container.SaveError(); err != nil {
		return err
	}
	fmt.Printf("Settings section: %s\n", section)
	return nil
}

// SettingsPresetsCmd replaces the preset list
type SettingsPresetsCmd struct {
	File string `arg:"" help:"JSON file holding an array of {id, name, prompt}" type:"existingfile"`
}

// Run executes the presets command
func (s *SettingsPresetsCmd) Run(cli *CLI) error {
	data, err := os.ReadFile(s.File)
	if err != nil {
		return fmt.Errorf("failed to read presets: %w", err)
	}
	var presets []domain.PromptPreset
	if err := json.Unmarshal(data, &presets); err != nil {
		return fmt.Errorf("invalid presets file: %w", err)
	}

	container, err := cli.Container()
	if err != nil {
		return err
	}

	container.SettingStore.SetPresets(presets)
	if err := container.SaveError(); err != nil {
		return err
	}
	fmt.Printf("Loaded %d presets\n", len(presets))
	return nil
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run() error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use 'panelbridge settings set <key> <value>' or edit this file to configure panelbridge.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

// SettingsSetCmd changes one option in settings.json
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Option name (e.g., default_chat_mode, scan_exclude)"`
	Value string `arg:"" optional:"" help:"New value: JSON (true, 8, [\"*.log\"]) or plain text; comma-separated for lists"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run() error {
	logging.Logger.Debug("Setting option", "key", s.Key, "value", s.Value)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	updated, err := settings.With(s.Key, s.Value)
	if err != nil {
		return err
	}

	if err := config.SaveSettings(updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	if s.Value == "" {
		fmt.Printf("Removed '%s'\n", s.Key)
		return nil
	}
	fmt.Printf("Set '%s' to: %s\n", s.Key, s.Value)
	return nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
