package models

// ProfileForm is the editor's form state. Every field is optional at the data
// layer: blank submissions are accepted and stored as empty strings.
type ProfileForm struct {
	Name            string
	Year            string
	Skills          string
	Interests       string
	Whatsapp        string
	Twitter         string
	WhatsappVisible bool
	TwitterVisible  bool
}

// EmptyProfileForm returns the editor's default state. Visibility flags
// default to true so contact handles are shown unless explicitly hidden.
func EmptyProfileForm() ProfileForm {
	return ProfileForm{WhatsappVisible: true, TwitterVisible: true}
}

// FormFromProfile populates form state from a stored row.
func FormFromProfile(p Profile) ProfileForm {
	return ProfileForm{
		Name:            p.Name,
		Year:            p.Year,
		Skills:          p.Skills,
		Interests:       p.Interests,
		Whatsapp:        p.Whatsapp,
		Twitter:         p.Twitter,
		WhatsappVisible: p.WhatsappVisible,
		TwitterVisible:  p.TwitterVisible,
	}
}

// ToProfile builds the full replacement row for an upsert. The row always
// carries every field, including unchanged ones; CreatedAt is left to the
// storage layer.
func (f ProfileForm) ToProfile(userID string) Profile {
	return Profile{
		ID:              userID,
		Name:            f.Name,
		Year:            f.Year,
		Skills:          f.Skills,
		Interests:       f.Interests,
		Whatsapp:        f.Whatsapp,
		Twitter:         f.Twitter,
		WhatsappVisible: f.WhatsappVisible,
		TwitterVisible:  f.TwitterVisible,
	}
}

// CompletedFields counts the filled fields for the editor's completion line.
// Switched-on visibility flags count, matching how the profile page has
// always reported "completion: n/8".
func (f ProfileForm) CompletedFields() int {
	n := 0
	for _, s := range []string{f.Name, f.Year, f.Skills, f.Interests, f.Whatsapp, f.Twitter} {
		if s != "" {
			n++
		}
	}
	if f.WhatsappVisible {
		n++
	}
	if f.TwitterVisible {
		n++
	}
	return n
}

// TeamForm is the team creator's form state.
type TeamForm struct {
	TeamName      string
	HackathonName string
	NeededSkills  string
	Timeline      string
	WhatsappGroup string
	Description   string
}

// ToTeam builds the row to insert. ID and CreatedAt are assigned by the
// storage layer.
func (f TeamForm) ToTeam(userID string) Team {
	return Team{
		UserID:        userID,
		TeamName:      f.TeamName,
		HackathonName: f.HackathonName,
		NeededSkills:  f.NeededSkills,
		Timeline:      f.Timeline,
		WhatsappGroup: f.WhatsappGroup,
		Description:   f.Description,
	}
}
