package lang

var englishStrings = map[string]string{
	"LANG_TITLE":             "Linux Universal Tool",
	"LANG_TITLE_LINE1":       "Linux Universal Tool - Central Management Environment",
	"LANG_SUBTITLE":          "Central Management Environment",
	"LANG_LANGUAGE_SELECT":   "Language / Sprache",
	"LANG_KEYBOARD_SELECT":   "Keyboard Layout",
	"LANG_NAVIGATION":        "↑/↓: Navigation   Enter: Select   Backspace: Back   ESC: Exit",
	"LANG_MAIN_MENU":         "Main Menu",
	"LANG_INSTALL":           "System Installation",
	"LANG_INSTALL_DESC":      "Set up and configure a new Linux system. Partitioning, bootloader installation and basic configuration.",
	"LANG_BACKUP":            "Backup & Restore",
	"LANG_BACKUP_DESC":       "Create and manage system backups. Restore data and preserve system states.",
	"LANG_KEYS":              "Key Management",
	"LANG_KEYS_DESC":         "Create and manage cryptographic keys for boot USB drives and system encryption.",
	"LANG_CONFIRM_TITLE":     "Confirm Exit",
	"LANG_EXIT_CONFIRM":      "Do you really want to exit lunitool?",
	"LANG_YES":               "Yes",
	"LANG_NO":                "No",
	"LANG_INVALID_SELECTION": "Invalid selection",
	"LANG_NOT_IMPLEMENTED":   "This feature is not yet implemented and will be available in a future version.",

	"LANG_TOGGLE_THEME_SHORT": "Theme",
	"LANG_TOGGLE_LOG_SHORT":   "Log",
	"LANG_NEXT_STEP_SHORT":    "Next step",
	"LANG_CANCEL_SHORT":       "Cancel",
	"LANG_NAVIGATE_SHORT":     "Navigate",
	"LANG_BACK_SHORT":         "Back",
	"LANG_SELECT_SHORT":       "Select",
	"LANG_EXIT_SHORT":         "Exit",
	"LANG_CONFIRM_SHORT":      "Confirm",
	"LANG_CLOSE_SHORT":        "Close",
	"LANG_SCROLL_SHORT":       "Scroll",

	"INSTALL_HEADER_LINE2":         "System Installation",
	"INSTALL_WELCOME_MESSAGE":      "Welcome to the lunitool system installation. Press Enter to begin.",
	"INSTALL_WELCOME_DESC":         "This wizard guides you through installing a new Linux system. Each step is listed on the right; Enter moves to the next step and Backspace returns to the previous one.",
	"INSTALL_DISK_SETUP_DESC":      "Choose the partition, free space or logical volume that will receive the new system. Disk headers and active containers cannot be selected.",
	"INSTALL_USER_SETUP_DESC":      "Enter the hostname of the new system. Letters, digits and hyphens are recommended.",
	"INSTALL_SUMMARY_DESC":         "Review the collected settings. The installation itself is not performed in this version.",
	"INSTALL_SUMMARY_MESSAGE":      "The following settings were collected:",
	"INSTALL_LOG_TITLE":            "Log",
	"INSTALL_TASKS_TITLE":          "Steps",
	"INSTALL_DESCRIPTION_TITLE":    "Description",
	"INSTALL_LABEL_COMMAND_STATUS": "Command",
	"INSTALL_LABEL_CURRENT_STEP":   "Current step",

	"TASK_WELCOME":    "Welcome",
	"TASK_DISK_SETUP": "Disk setup",
	"TASK_USER_SETUP": "User setup",
	"TASK_SUMMARY":    "Summary",
	"UNKNOWN_TASK":    "Unknown task",

	"INFO_LOADING_DISKS":          "Loading disk information...",
	"INFO_NO_DISKS_FOUND":         "No disks found.",
	"INFO_NO_TASKS":               "No tasks available.",
	"INFO_PENDING_IMPLEMENTATION": "This step is not implemented yet.",
	"INFO_NO_LOG_LINES":           "No log entries yet.",

	"PROMPT_SELECT_DISK": "Select the installation target:",
	"PROMPT_HOSTNAME":    "Hostname",

	"SUMMARY_TARGET_DISK": "Target",
	"SUMMARY_HOSTNAME":    "Hostname",
	"SUMMARY_NOT_SET":     "(not set)",

	"SYSINFO_TITLE":           "System",
	"SYSINFO_OS":              "Operating system",
	"SYSINFO_KERNEL":          "Kernel",
	"SYSINFO_ARCH":            "Architecture",
	"SYSINFO_MEMORY":          "Memory",
	"SYSINFO_ROOT_FREE":       "Free on /",
	"SYSINFO_LIVE":            "Live environment",
	"SYSINFO_PACKAGE_MANAGER": "Package manager",
	"SYSINFO_UNKNOWN":         "unknown",

	"DIALOG_YES":                      "Yes",
	"DIALOG_NO":                       "No",
	"DIALOG_THEME_SELECTOR_TITLE":     "Select Theme",
	"DIALOG_THEME_SELECTOR_NO_THEMES": "No themes available.",
	"DIALOG_YESNO_EXAMPLE_TITLE":      "Example Dialog",
	"DIALOG_YESNO_EXAMPLE_MESSAGE":    "This is an example yes/no dialog. Either answer simply closes it.",

	"ERROR_TITLE_PREFIX":   "Error: ",
	"ERROR_LANGUAGE_TITLE": "Language Error",
	"ERROR_KEYBOARD_TITLE": "Keyboard Error",
}
