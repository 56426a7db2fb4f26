package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type SchedulePublishedMailData struct {
	PublishedAt string `json:"publishedAt"`
	EntryCount  int    `json:"entryCount"`
}
