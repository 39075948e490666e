package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/cjelland/redwall/config"
	"github.com/cjelland/redwall/pkg/background"
	"github.com/cjelland/redwall/util/log"
)

const frequencyPattern = `^[1-9][0-9]{0,4}$`

// showSettingsWindow opens the settings window for API credentials and the
// rotation interval. Changes are written back to settings.json on apply; fetch
// tasks and the rotator pick them up on their next cycle.
func (ra *App) showSettingsWindow() {
	win := ra.app.NewWindow(fmt.Sprintf("%s Settings", config.AppName))
	win.Resize(fyne.NewSize(520, 480))
	win.CenterOnScreen()

	settings, err := ra.settings.Load()
	if err != nil {
		log.Printf("Failed to load settings: %v", err)
		settings = background.Settings{}
	}

	clientIDEntry := widget.NewEntry()
	clientIDEntry.SetPlaceHolder("Your reddit application client ID")
	clientIDEntry.SetText(settings.ClientID)

	clientSecretEntry := widget.NewPasswordEntry()
	clientSecretEntry.SetPlaceHolder("Your reddit application client secret")
	clientSecretEntry.SetText(settings.ClientSecret)

	userAgentEntry := widget.NewEntry()
	userAgentEntry.SetPlaceHolder("e.g. desktop:com.example.redwall:v1.0 (by /u/you)")
	userAgentEntry.SetText(settings.UserAgent)

	frequencyEntry := widget.NewEntry()
	frequencyEntry.SetPlaceHolder("Minutes between background changes")
	frequencyEntry.SetText(strconv.Itoa(settings.ChangeFrequency))
	frequencyEntry.Validator = validation.NewRegexp(frequencyPattern, "Change frequency must be a positive number of minutes")

	formStatus := widget.NewLabel("")

	var applyButton *widget.Button
	applyButton = widget.NewButton("Apply Changes", func() {
		minutes, err := strconv.Atoi(frequencyEntry.Text)
		if err != nil || minutes < 1 {
			formStatus.SetText("Change frequency must be a positive number of minutes")
			formStatus.Importance = widget.DangerImportance
			formStatus.Refresh()
			return
		}

		current, err := ra.settings.Load()
		if err != nil {
			log.Printf("Failed to reload settings: %v", err)
			current = background.Settings{Blacklist: []string{}}
		}
		current.ClientID = clientIDEntry.Text
		current.ClientSecret = clientSecretEntry.Text
		current.UserAgent = userAgentEntry.Text
		current.ChangeFrequency = minutes

		if err := ra.settings.Save(current); err != nil {
			formStatus.SetText(err.Error())
			formStatus.Importance = widget.DangerImportance
			formStatus.Refresh()
			return
		}
		formStatus.SetText("Settings saved")
		formStatus.Importance = widget.SuccessImportance
		formStatus.Refresh()
		applyButton.Disable()
	})
	applyButton.Disable()

	markDirty := func(string) {
		applyButton.Enable()
	}
	clientIDEntry.OnChanged = markDirty
	clientSecretEntry.OnChanged = markDirty
	userAgentEntry.OnChanged = markDirty
	frequencyEntry.OnChanged = markDirty

	closeButton := widget.NewButton("Close", func() {
		win.Close()
	})

	form := container.NewVBox(
		createSectionTitleLabel("Reddit API"),
		createSettingDescriptionLabel("Create a script application at reddit.com/prefs/apps and enter its credentials here."),
		widget.NewSeparator(),
		createSettingTitleLabel("Client ID:"),
		clientIDEntry,
		createSettingTitleLabel("Client Secret:"),
		clientSecretEntry,
		createSettingTitleLabel("User Agent:"),
		userAgentEntry,
		widget.NewSeparator(),
		createSectionTitleLabel("Rotation"),
		createSettingTitleLabel("Change Frequency (minutes):"),
		frequencyEntry,
		formStatus,
		widget.NewSeparator(),
		applyButton,
	)

	win.SetContent(container.NewBorder(nil, container.NewHBox(layout.NewSpacer(), closeButton), nil, nil, form))
	win.Show()
}
