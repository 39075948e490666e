package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/cjelland/redwall/config"
	"github.com/cjelland/redwall/pkg/background"
	"github.com/cjelland/redwall/util/log"
)

const countPattern = `^[1-9][0-9]{0,2}$`

// showManageWindow opens the subreddit management window. Saving an entry
// immediately enqueues a fetch task for it; the mutating buttons are disabled
// while any fetch is in flight.
func (ra *App) showManageWindow() {
	win := ra.app.NewWindow(fmt.Sprintf("%s Subreddits", config.AppName))
	win.Resize(fyne.NewSize(560, 560))
	win.CenterOnScreen()

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Subreddit name, e.g. EarthPorn")
	nameEntry.Validator = validation.NewRegexp(background.SubredditNamePattern, "Subreddit names are 2 to 21 letters, digits or underscores")

	windowSelect := widget.NewSelect(background.WindowLabels(), func(string) {})
	windowSelect.SetSelected(background.DefaultWindowLabel)

	countEntry := widget.NewEntry()
	countEntry.SetPlaceHolder("Number of images, e.g. 25")
	countEntry.Validator = validation.NewRegexp(countPattern, "Image count must be a number between 1 and 999")

	formStatus := widget.NewLabel("")

	var subList *widget.List
	var saveButton *widget.Button
	mutators := []*widget.Button{}

	refreshList := func() {
		fyne.Do(func() {
			subList.Refresh()
		})
	}

	saveButton = widget.NewButton("Save & Fetch", func() {
		count, err := strconv.Atoi(countEntry.Text)
		if err != nil {
			formStatus.SetText("Image count must be a number")
			formStatus.Importance = widget.DangerImportance
			formStatus.Refresh()
			return
		}

		cfg := background.SubredditConfig{
			Name:        nameEntry.Text,
			WindowLabel: windowSelect.Selected,
			Limit:       count,
		}
		_, existed := ra.subs.Get(cfg.Name)
		if err := ra.subs.Add(cfg); err != nil {
			formStatus.SetText(err.Error())
			formStatus.Importance = widget.DangerImportance
			formStatus.Refresh()
			return
		}

		formStatus.SetText(fmt.Sprintf("Saved r/%s, fetching images", cfg.Name))
		formStatus.Importance = widget.SuccessImportance
		formStatus.Refresh()
		subList.Refresh()
		// Updating an entry clears its previous images so a smaller count
		// cannot leave a stale surplus in the pool.
		if existed {
			ra.queue.EnqueueReplacing(cfg)
		} else {
			ra.queue.Enqueue(cfg)
		}
	})
	saveButton.Disable()
	mutators = append(mutators, saveButton)

	validateForm := func() {
		if nameEntry.Validate() == nil && countEntry.Validate() == nil && windowSelect.Selected != "" {
			saveButton.Enable()
		} else {
			saveButton.Disable()
		}
	}
	nameEntry.OnChanged = func(string) { validateForm() }
	countEntry.OnChanged = func(string) { validateForm() }

	subList = widget.NewList(
		func() int {
			return len(ra.subs.List())
		},
		func() fyne.CanvasObject {
			icon := widget.NewIcon(nil)
			name := widget.NewLabel("Placeholder")
			detail := widget.NewLabel("Placeholder")
			detail.Importance = widget.LowImportance
			deleteButton := widget.NewButton("Delete", nil)
			return container.NewHBox(icon, name, detail, layout.NewSpacer(), deleteButton)
		},
		func(i int, o fyne.CanvasObject) {
			entries := ra.subs.List()
			if i >= len(entries) {
				return
			}
			entry := entries[i]

			c := o.(*fyne.Container)
			icon := c.Objects[0].(*widget.Icon)
			name := c.Objects[1].(*widget.Label)
			detail := c.Objects[2].(*widget.Label)
			deleteButton := c.Objects[4].(*widget.Button)

			icon.SetResource(ra.subredditIcon(entry.Name))
			name.SetText(fmt.Sprintf("r/%s", entry.Name))
			detail.SetText(fmt.Sprintf("%s, %d images", entry.WindowLabel, entry.Limit))

			if ra.queue.InFlight() > 0 {
				deleteButton.Disable()
			} else {
				deleteButton.Enable()
			}
			deleteButton.OnTapped = func() {
				d := dialog.NewConfirm("Please Confirm",
					fmt.Sprintf("Delete r/%s and all of its downloaded images?", entry.Name),
					func(confirmed bool) {
						if !confirmed {
							return
						}
						if err := ra.subs.Remove(entry.Name); err != nil {
							log.Printf("Failed to remove r/%s: %v", entry.Name, err)
							return
						}
						if err := ra.pool.Remove(entry.Name); err != nil {
							log.Printf("Failed to delete images of r/%s: %v", entry.Name, err)
						}
						subList.Refresh()
					}, win)
				d.Show()
			}
		},
	)

	// Selecting a row loads it into the form for editing.
	subList.OnSelected = func(i widget.ListItemID) {
		entries := ra.subs.List()
		if i >= len(entries) {
			return
		}
		entry := entries[i]
		nameEntry.SetText(entry.Name)
		windowSelect.SetSelected(entry.WindowLabel)
		countEntry.SetText(strconv.Itoa(entry.Limit))
		validateForm()
	}

	ra.queue.SetBusyListener(func(busy bool) {
		fyne.Do(func() {
			for _, b := range mutators {
				if busy {
					b.Disable()
				} else {
					b.Enable()
				}
			}
			if !busy {
				validateForm()
			}
		})
		refreshList()
	})
	win.SetOnClosed(func() {
		ra.queue.SetBusyListener(nil)
	})

	form := container.NewVBox(
		createSectionTitleLabel("Subreddits"),
		createSettingDescriptionLabel("Images are downloaded from each subreddit's top submissions within the selected time window."),
		widget.NewSeparator(),
		createSettingTitleLabel("Subreddit:"),
		nameEntry,
		createSettingTitleLabel("Top submissions from:"),
		windowSelect,
		createSettingTitleLabel("Image count:"),
		countEntry,
		formStatus,
		saveButton,
		widget.NewSeparator(),
	)

	win.SetContent(container.NewBorder(form, nil, nil, nil, subList))
	win.Show()
}

// subredditIcon returns the downloaded community icon, falling back to the
// bundled default.
func (ra *App) subredditIcon(name string) fyne.Resource {
	res, err := fyne.LoadResourceFromPath(ra.pool.IconPath(name))
	if err == nil {
		return res
	}
	fallback, err := ra.assetMgr.GetIcon(config.DefaultIconName)
	if err != nil {
		return nil
	}
	return fallback
}
