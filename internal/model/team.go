package model

// Subteam groups team members, e.g. "Mechanical" or "Programming".
type Subteam struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ColorCode   string `json:"color_code"`
	Specialties string `json:"specialties"`
}

// TeamMember is a roster entry. SubteamID is nil for unassigned members.
type TeamMember struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Skills    string `json:"skills"`
	Leader    bool   `json:"leader"`
	SubteamID *int64 `json:"subteam_id"`
}

// FullName joins first and last name.
func (m TeamMember) FullName() string {
	switch {
	case m.FirstName == "":
		return m.LastName
	case m.LastName == "":
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// Subsystem is a robot subsystem owned by a subteam.
type Subsystem struct {
	ID                  int64           `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Status              SubsystemStatus `json:"status"`
	SubteamID           int64           `json:"subteam_id"`
	ResponsibleMemberID *int64          `json:"responsible_member_id"`
}
