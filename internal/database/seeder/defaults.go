package seeder

// Defaults is the demo data set: one employer with a job post and one job
// seeker, all sharing DemoPassword.
func Defaults() []Seeder {
	return []Seeder{
		UsersSeeder{},
		ProfilesSeeder{},
		JobPostsSeeder{},
	}
}
