package lang

var germanStrings = map[string]string{
	"LANG_TITLE":             "Linux Universal Tool",
	"LANG_TITLE_LINE1":       "Linux Universal Tool - Zentrale Verwaltungsumgebung",
	"LANG_SUBTITLE":          "Zentrale Verwaltungsumgebung",
	"LANG_LANGUAGE_SELECT":   "Sprache / Language",
	"LANG_KEYBOARD_SELECT":   "Tastaturlayout",
	"LANG_NAVIGATION":        "↑/↓: Navigation   Enter: Auswählen   Backspace: Zurück   ESC: Beenden",
	"LANG_MAIN_MENU":         "Hauptmenü",
	"LANG_INSTALL":           "System-Installation",
	"LANG_INSTALL_DESC":      "Neues Linux-System einrichten und konfigurieren. Partitionierung, Bootloader-Installation und Grundeinrichtung.",
	"LANG_BACKUP":            "Sicherung & Wiederherstellung",
	"LANG_BACKUP_DESC":       "Systemsicherungen erstellen und verwalten. Daten wiederherstellen und Systemzustände sichern.",
	"LANG_KEYS":              "Schlüssel-Verwaltung",
	"LANG_KEYS_DESC":         "Kryptografische Schlüssel für Boot-USB und Systemverschlüsselung erstellen und verwalten.",
	"LANG_CONFIRM_TITLE":     "Beenden bestätigen",
	"LANG_EXIT_CONFIRM":      "Möchtest du lunitool wirklich beenden?",
	"LANG_YES":               "Ja",
	"LANG_NO":                "Nein",
	"LANG_INVALID_SELECTION": "Ungültige Auswahl",
	"LANG_NOT_IMPLEMENTED":   "Diese Funktion ist noch nicht implementiert und wird in einer zukünftigen Version verfügbar sein.",

	"LANG_TOGGLE_THEME_SHORT": "Theme",
	"LANG_TOGGLE_LOG_SHORT":   "Log",
	"LANG_NEXT_STEP_SHORT":    "Weiter",
	"LANG_CANCEL_SHORT":       "Abbrechen",
	"LANG_NAVIGATE_SHORT":     "Navigieren",
	"LANG_BACK_SHORT":         "Zurück",
	"LANG_SELECT_SHORT":       "Auswählen",
	"LANG_EXIT_SHORT":         "Beenden",
	"LANG_CONFIRM_SHORT":      "Bestätigen",
	"LANG_CLOSE_SHORT":        "Schließen",
	"LANG_SCROLL_SHORT":       "Blättern",

	"INSTALL_HEADER_LINE2":         "System-Installation",
	"INSTALL_WELCOME_MESSAGE":      "Willkommen zur lunitool System-Installation. Drücke Enter, um zu beginnen.",
	"INSTALL_WELCOME_DESC":         "Dieser Assistent führt dich durch die Installation eines neuen Linux-Systems. Die Schritte stehen rechts; Enter wechselt zum nächsten Schritt, Backspace zum vorherigen.",
	"INSTALL_DISK_SETUP_DESC":      "Wähle die Partition, den freien Bereich oder das logische Volume, auf dem das neue System installiert wird. Datenträger und aktive Container sind nicht auswählbar.",
	"INSTALL_USER_SETUP_DESC":      "Gib den Hostnamen des neuen Systems ein. Empfohlen sind Buchstaben, Ziffern und Bindestriche.",
	"INSTALL_SUMMARY_DESC":         "Überprüfe die gesammelten Einstellungen. Die eigentliche Installation wird in dieser Version nicht ausgeführt.",
	"INSTALL_SUMMARY_MESSAGE":      "Folgende Einstellungen wurden gesammelt:",
	"INSTALL_LOG_TITLE":            "Protokoll",
	"INSTALL_TASKS_TITLE":          "Schritte",
	"INSTALL_DESCRIPTION_TITLE":    "Beschreibung",
	"INSTALL_LABEL_COMMAND_STATUS": "Befehl",
	"INSTALL_LABEL_CURRENT_STEP":   "Aktueller Schritt",

	"TASK_WELCOME":    "Willkommen",
	"TASK_DISK_SETUP": "Datenträger",
	"TASK_USER_SETUP": "Benutzer",
	"TASK_SUMMARY":    "Zusammenfassung",
	"UNKNOWN_TASK":    "Unbekannter Schritt",

	"INFO_LOADING_DISKS":          "Datenträger werden geladen...",
	"INFO_NO_DISKS_FOUND":         "Keine Datenträger gefunden.",
	"INFO_NO_TASKS":               "Keine Schritte vorhanden.",
	"INFO_PENDING_IMPLEMENTATION": "Dieser Schritt ist noch nicht implementiert.",
	"INFO_NO_LOG_LINES":           "Noch keine Protokolleinträge.",

	"PROMPT_SELECT_DISK": "Installationsziel auswählen:",
	"PROMPT_HOSTNAME":    "Hostname",

	"SUMMARY_TARGET_DISK": "Ziel",
	"SUMMARY_HOSTNAME":    "Hostname",
	"SUMMARY_NOT_SET":     "(nicht gesetzt)",

	"SYSINFO_TITLE":           "System",
	"SYSINFO_OS":              "Betriebssystem",
	"SYSINFO_KERNEL":          "Kernel",
	"SYSINFO_ARCH":            "Architektur",
	"SYSINFO_MEMORY":          "Arbeitsspeicher",
	"SYSINFO_ROOT_FREE":       "Frei auf /",
	"SYSINFO_LIVE":            "Live-Umgebung",
	"SYSINFO_PACKAGE_MANAGER": "Paketverwaltung",
	"SYSINFO_UNKNOWN":         "unbekannt",

	"DIALOG_YES":                      "Ja",
	"DIALOG_NO":                       "Nein",
	"DIALOG_THEME_SELECTOR_TITLE":     "Theme auswählen",
	"DIALOG_THEME_SELECTOR_NO_THEMES": "Keine Themes verfügbar.",
	"DIALOG_YESNO_EXAMPLE_TITLE":      "Beispieldialog",
	"DIALOG_YESNO_EXAMPLE_MESSAGE":    "Dies ist ein Beispiel für einen Ja/Nein-Dialog. Beide Antworten schließen ihn.",

	"ERROR_TITLE_PREFIX":   "Fehler: ",
	"ERROR_LANGUAGE_TITLE": "Sprachfehler",
	"ERROR_KEYBOARD_TITLE": "Tastaturfehler",
}
