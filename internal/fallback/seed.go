package fallback

import (
	"sync"
	"time"

	"framework4future/portal/internal/constants"
	gormModels "framework4future/portal/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
)

// Demo accounts available whenever the live store is not configured.
const (
	DemoAdminEmail     = "admin@framework4future.org"
	DemoAdminPassword  = "admin123"
	DemoMemberEmail    = "member@framework4future.org"
	DemoMemberPassword = "member123"
	DemoPendingEmail   = "pending@framework4future.org"
	DemoPendingPasswd  = "pending123"
)

var demoHashes = sync.OnceValue(func() map[string]string {
	out := make(map[string]string, 3)
	for email, password := range map[string]string{
		DemoAdminEmail:   DemoAdminPassword,
		DemoMemberEmail:  DemoMemberPassword,
		DemoPendingEmail: DemoPendingPasswd,
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			panic("fallback: hashing demo password: " + err.Error())
		}
		out[email] = string(hash)
	}
	return out
})

func seed(s *Store) {
	base := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	at := func(daysAgo int) time.Time { return base.AddDate(0, 0, -daysAgo) }
	str := func(v string) *string { return &v }
	hashes := demoHashes()

	for _, e := range []gormModels.Event{
		{
			ID:          "1",
			Name:        "Youth Climate Summit",
			Description: "A full day of workshops and panels led by students working on local climate projects.",
			Image:       "/images/events/climate-summit.jpg",
			Date:        "2025-10-18",
			SignupURL:   "https://forms.framework4future.org/climate-summit",
			CreatedAt:   at(1),
			UpdatedAt:   at(1),
		},
		{
			ID:          "2",
			Name:        "Community Garden Build",
			Description: "Help build raised beds and plant the fall crop at the Eastside community garden.",
			Image:       "/images/events/garden-build.jpg",
			Date:        "Saturdays in October",
			SignupURL:   "https://forms.framework4future.org/garden-build",
			CreatedAt:   at(5),
			UpdatedAt:   at(5),
		},
		{
			ID:          "3",
			Name:        "Leadership Workshop Series",
			Description: "Monthly sessions on public speaking, project planning and running a student club.",
			Image:       "/images/events/leadership.jpg",
			Date:        "2025-11-06",
			SignupURL:   "https://forms.framework4future.org/leadership",
			CreatedAt:   at(12),
			UpdatedAt:   at(12),
		},
	} {
		s.Events.items = append(s.Events.items, e)
	}

	for _, c := range []gormModels.BlogCategory{
		{ID: "1", Name: "Announcements", Slug: "announcements", CreatedAt: at(60)},
		{ID: "2", Name: "Programs", Slug: "programs", CreatedAt: at(61)},
		{ID: "3", Name: "Community Stories", Slug: "community-stories", CreatedAt: at(62)},
	} {
		s.Categories.items = append(s.Categories.items, c)
	}

	for _, b := range []gormModels.Blog{
		{
			ID:         "1",
			Title:      "Welcome to the new Framework 4 Future site",
			Content:    "We rebuilt our website so members can register, pay dues and log volunteering hours in one place.",
			Excerpt:    "We rebuilt our website so members can register, pay dues and log volunteering hours in one place.",
			Image:      "/images/blog/welcome.jpg",
			Date:       "2025-08-31",
			Author:     "Framework 4 Future Team",
			ReadTime:   "1 min read",
			CategoryID: str("1"),
			Featured:   true,
			CreatedAt:  at(1),
			UpdatedAt:  at(1),
		},
		{
			ID:         "2",
			Title:      "Inside our mentorship program",
			Content:    "Each semester we pair high school students with mentors from local universities and businesses.",
			Excerpt:    "Each semester we pair high school students with mentors from local universities and businesses.",
			Image:      "/images/blog/mentorship.jpg",
			Date:       "2025-08-20",
			Author:     "Programs Committee",
			ReadTime:   "1 min read",
			CategoryID: str("2"),
			CreatedAt:  at(12),
			UpdatedAt:  at(12),
		},
		{
			ID:         "3",
			Title:      "Summer coding camp recap",
			Content:    "Forty students built their first web apps during our two week summer coding camp.",
			Excerpt:    "Forty students built their first web apps during our two week summer coding camp.",
			Image:      "/images/blog/coding-camp.jpg",
			Date:       "2025-08-02",
			Author:     "Programs Committee",
			ReadTime:   "1 min read",
			CategoryID: str("2"),
			CreatedAt:  at(30),
			UpdatedAt:  at(30),
		},
		{
			ID:         "4",
			Title:      "How one member started a recycling drive",
			Content:    "A sophomore turned a classroom idea into a district wide recycling drive in under a month.",
			Excerpt:    "A sophomore turned a classroom idea into a district wide recycling drive in under a month.",
			Image:      "/images/blog/recycling.jpg",
			Date:       "2025-07-15",
			Author:     "Community Desk",
			ReadTime:   "1 min read",
			CategoryID: str("3"),
			CreatedAt:  at(48),
			UpdatedAt:  at(48),
		},
	} {
		s.Blogs.items = append(s.Blogs.items, b)
	}

	for _, m := range []gormModels.Member{
		{
			ID:               "1",
			FirstName:        "Site",
			LastName:         "Admin",
			Name:             "Site Admin",
			Email:            DemoAdminEmail,
			PasswordHash:     hashes[DemoAdminEmail],
			PaymentMethod:    str(string(constants.PaymentCard)),
			PaymentStatus:    constants.PaymentCompleted,
			TransactionID:    str("demo-admin-txn"),
			MembershipStatus: constants.MembershipActive,
			IsAdmin:          true,
			CreatedAt:        at(90),
			UpdatedAt:        at(90),
		},
		{
			ID:               "2",
			FirstName:        "Jordan",
			LastName:         "Lee",
			Name:             "Jordan Lee",
			Email:            DemoMemberEmail,
			Phone:            "555-0101",
			Grade:            "11",
			SchoolName:       "Lincoln High School",
			PasswordHash:     hashes[DemoMemberEmail],
			PaymentMethod:    str(string(constants.PaymentPayPal)),
			PaymentStatus:    constants.PaymentCompleted,
			TransactionID:    str("demo-member-txn"),
			MembershipStatus: constants.MembershipActive,
			CreatedAt:        at(30),
			UpdatedAt:        at(30),
		},
		{
			ID:               "3",
			FirstName:        "Sam",
			LastName:         "Rivera",
			Name:             "Sam Rivera",
			Email:            DemoPendingEmail,
			Phone:            "555-0102",
			Grade:            "10",
			SchoolName:       "Roosevelt High School",
			PasswordHash:     hashes[DemoPendingEmail],
			PaymentStatus:    constants.PaymentPending,
			MembershipStatus: constants.MembershipPending,
			CreatedAt:        at(3),
			UpdatedAt:        at(3),
		},
	} {
		s.Members.items = append(s.Members.items, m)
	}

	reviewedAt := at(8)
	for _, h := range []gormModels.VolunteeringHours{
		{
			ID:               "1",
			MemberID:         "2",
			ActivityName:     "Food bank shift",
			HoursCompleted:   3,
			ActivityDate:     "2025-08-28",
			OrganizationName: "Eastside Food Bank",
			SupervisorName:   "Pat Morgan",
			SupervisorEmail:  "pat@eastsidefoodbank.org",
			Status:           constants.HoursPending,
			CreatedAt:        at(2),
			UpdatedAt:        at(2),
		},
		{
			ID:               "2",
			MemberID:         "2",
			ActivityName:     "Park cleanup",
			HoursCompleted:   2.5,
			ActivityDate:     "2025-08-16",
			OrganizationName: "City Parks Department",
			Status:           constants.HoursApproved,
			AdminNotes:       "Confirmed with the parks coordinator.",
			ReviewedBy:       str("1"),
			ReviewedAt:       &reviewedAt,
			CreatedAt:        at(14),
			UpdatedAt:        at(8),
		},
	} {
		s.Hours.items = append(s.Hours.items, h)
	}

	for _, t := range []gormModels.TeamMember{
		{ID: "1", Name: "Avery Chen", Title: "President", Category: constants.TeamYouthLeader, Headshot: "/images/team/avery.jpg", Bio: "Senior who founded the school sustainability club.", DisplayOrder: 1, IsActive: true, CreatedAt: at(120)},
		{ID: "2", Name: "Maya Patel", Title: "Vice President", Category: constants.TeamYouthLeader, Headshot: "/images/team/maya.jpg", Bio: "Runs the mentorship program intake.", DisplayOrder: 2, IsActive: true, CreatedAt: at(120)},
		{ID: "3", Name: "Daniel Brooks", Title: "Treasurer", Category: constants.TeamExecutiveMember, Headshot: "/images/team/daniel.jpg", Bio: "Keeps the books and the bake sale schedule.", DisplayOrder: 1, IsActive: true, CreatedAt: at(120)},
		{ID: "4", Name: "Dr. Linda Okafor", Title: "Board Chair", Category: constants.TeamBoardDirector, Headshot: "/images/team/linda.jpg", Bio: "Education researcher and longtime community organizer.", DisplayOrder: 1, IsActive: true, CreatedAt: at(365)},
		{ID: "5", Name: "Chris Wong", Title: "Former Secretary", Category: constants.TeamExecutiveMember, Headshot: "/images/team/chris.jpg", DisplayOrder: 9, IsActive: false, CreatedAt: at(400)},
	} {
		t.UpdatedAt = t.CreatedAt
		s.Team.items = append(s.Team.items, t)
	}
}
