// Package fixtures provides the demo profiles shown before any real users exist.
package fixtures

import "github.com/vijay-prabhu/roommate-match/internal/profile"

// Profiles returns fresh copies of the demo profiles
func Profiles() []profile.Profile {
	return []profile.Profile{
		Alex(),
		Sarah(),
		Mike(),
	}
}

// Alex is a quiet, work-from-home software engineer in the Mission
func Alex() profile.Profile {
	return profile.Profile{
		ID:    "1",
		Email: "alex@example.com",
		Name:  "Alex Chen",
		Age:   24,
		Bio:   "Software engineer who loves hiking and cooking. Looking for a clean, quiet space to work from home.",
		Location: profile.Location{
			City:         "San Francisco",
			Neighborhood: "Mission District",
			Coordinates:  profile.Coordinates{Lat: 37.7749, Lon: -122.4194},
		},
		Preferences: profile.Preferences{
			Budget:     profile.Budget{Min: 1500, Max: 2200},
			MoveInDate: profile.MustParseDate("2024-02-01"),
			Duration:   profile.DurationLong,
			Lifestyle:  profile.Tags{"quiet", "work-focused"},
			Habits:     profile.Tags{"cleaning", "guests"},
			Interests:  profile.Tags{"hiking", "cooking", "tech"},
		},
	}
}

// Sarah is a social marketing professional in the Castro
func Sarah() profile.Profile {
	return profile.Profile{
		ID:    "2",
		Email: "sarah@example.com",
		Name:  "Sarah Johnson",
		Age:   26,
		Bio:   "Marketing professional who enjoys yoga and trying new restaurants. Pet-friendly and social!",
		Location: profile.Location{
			City:         "San Francisco",
			Neighborhood: "Castro",
			Coordinates:  profile.Coordinates{Lat: 37.7611, Lon: -122.4350},
		},
		Preferences: profile.Preferences{
			Budget:     profile.Budget{Min: 1800, Max: 2500},
			MoveInDate: profile.MustParseDate("2024-01-15"),
			Duration:   profile.DurationMedium,
			Lifestyle:  profile.Tags{"social", "party"},
			Habits:     profile.Tags{"pets", "guests"},
			Interests:  profile.Tags{"yoga", "food", "travel"},
		},
	}
}

// Mike is a night-owl data science grad student in SOMA
func Mike() profile.Profile {
	return profile.Profile{
		ID:    "3",
		Email: "mike@example.com",
		Name:  "Mike Rodriguez",
		Age:   28,
		Bio:   "Grad student in data science. Night owl who loves gaming and coffee. Looking for a study-friendly environment.",
		Location: profile.Location{
			City:         "San Francisco",
			Neighborhood: "SOMA",
			Coordinates:  profile.Coordinates{Lat: 37.7749, Lon: -122.4194},
		},
		Preferences: profile.Preferences{
			Budget:     profile.Budget{Min: 1200, Max: 1800},
			MoveInDate: profile.MustParseDate("2024-02-15"),
			Duration:   profile.DurationShort,
			Lifestyle:  profile.Tags{"quiet", "work-focused"},
			Habits:     profile.Tags{"cleaning"},
			Interests:  profile.Tags{"gaming", "coffee", "data-science"},
		},
	}
}
