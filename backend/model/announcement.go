package model

// Announcement is the site-wide banner. Saves overwrite the whole record,
// no history is kept.
type Announcement struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Active  bool   `json:"active"`
}

func defaultAnnouncement() Announcement {
	return Announcement{Active: false, Title: "", Content: ""}
}

func GetAnnouncement() Announcement {
	return announcementStore.Get()
}

func SaveAnnouncement(a Announcement) error {
	return announcementStore.Update(func(cur *Announcement) {
		*cur = a
	})
}
