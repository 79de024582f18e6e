package agent

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/instamakaan/instamakaan/internal/shared/biztime"
	"github.com/instamakaan/instamakaan/internal/shared/id"
)

const maxNotesLength = 2000

// Agent is a field agent inquiries are assigned to.
type Agent struct {
	id          string
	name        string
	email       string
	phone       string
	designation string
	status      Status
	notes       string
	createdAt   time.Time
	updatedAt   time.Time
}

type Profile struct {
	Name        string
	Email       string
	Phone       string
	Designation string
	Notes       string
}

func (p Profile) normalize() (Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
	p.Designation = strings.TrimSpace(p.Designation)
	p.Notes = strings.TrimSpace(p.Notes)

	if p.Name == "" {
		return p, fmt.Errorf("name is required")
	}
	if p.Email == "" {
		return p, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return p, fmt.Errorf("email is invalid")
	}
	if len(p.Notes) > maxNotesLength {
		return p, fmt.Errorf("notes exceed maximum length of %d characters", maxNotesLength)
	}
	return p, nil
}

func NewAgent(profile Profile, status Status) (*Agent, error) {
	p, err := profile.normalize()
	if err != nil {
		return nil, err
	}
	if status == "" {
		status = StatusActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid agent status: %s", status)
	}

	agentID, err := id.NewAgentID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate agent ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Agent{
		id:          agentID,
		name:        p.Name,
		email:       p.Email,
		phone:       p.Phone,
		designation: p.Designation,
		status:      status,
		notes:       p.Notes,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructAgent(
	agentID string,
	name, email, phone, designation string,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) (*Agent, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agent ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid agent status: %s", status)
	}

	return &Agent{
		id:          agentID,
		name:        name,
		email:       email,
		phone:       phone,
		designation: designation,
		status:      status,
		notes:       notes,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (a *Agent) ID() string {
	return a.id
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Email() string {
	return a.email
}

func (a *Agent) Phone() string {
	return a.phone
}

func (a *Agent) Designation() string {
	return a.designation
}

func (a *Agent) Status() Status {
	return a.status
}

func (a *Agent) Notes() string {
	return a.notes
}

func (a *Agent) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Agent) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Agent) IsActive() bool {
	return a.status == StatusActive
}

// EnsureAssignable fails for agents that may not receive new inquiries.
func (a *Agent) EnsureAssignable() error {
	if !a.IsActive() {
		return ErrAgentInactive
	}
	return nil
}

func (a *Agent) UpdateProfile(profile Profile) error {
	p, err := profile.normalize()
	if err != nil {
		return err
	}

	a.name = p.Name
	a.email = p.Email
	a.phone = p.Phone
	a.designation = p.Designation
	a.notes = p.Notes
	a.updatedAt = biztime.NowUTC()
	return nil
}

func (a *Agent) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid agent status: %s", status)
	}
	if a.status == status {
		return nil
	}
	a.status = status
	a.updatedAt = biztime.NowUTC()
	return nil
}
