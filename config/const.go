package config

import "strings"

// AppVersion is the version of the application, injected at build time.
var AppVersion string

// AppName is the name of the application.
const AppName = "Redwall"

// AppID is the identifier used for the fyne application and single-instance lock.
const AppID = "com.cjelland.redwall"

// DataSubDir is the per-user directory that holds all application state.
var DataSubDir = "." + strings.ToLower(AppName)

// ImagesDirName is the sub directory holding the wallpaper candidate pool.
const ImagesDirName = "images"

// IconsDirName is the sub directory holding one icon per subreddit.
const IconsDirName = "icons"

// SettingsFileName is the JSON settings file (credentials, frequency, blacklist).
const SettingsFileName = "settings.json"

// SubredditsFileName is the JSON file holding the ordered subreddit configurations.
const SubredditsFileName = "subreddits.json"

// TrayIconName is the embedded asset used for the system tray.
const TrayIconName = "tray.png"

// DefaultIconName is the embedded fallback icon used when a subreddit has none.
const DefaultIconName = "subreddit_default.png"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"
