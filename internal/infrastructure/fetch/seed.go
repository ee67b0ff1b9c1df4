package fetch

import (
	"strings"
	"time"

	"DocAuditor/internal/domain"
)

const seedTitle = "Explore the Number of Notifications Received by Users"

// seedBody is the pre-authored article substituted when live acquisition
// fails. It deliberately reads like typical help-center prose: structured and
// plain, but written in the third person.
const seedBody = seedTitle + `

The Notification Received report shows how many notifications users have received across channels such as Push, Email, SMS, and In-app. The report gives teams insight into notification distribution and engagement patterns over a selected time period.

How to Access the Report

To open the report, follow these steps:

1. Navigate to the Analytics dashboard
2. Click Reports in the left sidebar
3. Select Notification Reports from the dropdown
4. Choose Notifications Received by Users from the list

Understanding the Data

The report displays data in several formats. Overall Distribution shows the percentage breakdown of users by notification count. Channel-wise Analysis breaks down notifications by channel. Time-based Trends show how notification patterns change over time.

Key Metrics

Total Notifications Sent counts notifications delivered across all channels. Unique Users Reached counts distinct users who received at least one notification. Average Notifications per User is the mean number of notifications received per user. Channel Distribution is the percentage breakdown by channel.`

// SeedDocument returns the static fallback article, tagged Live=false.
func SeedDocument(url string) domain.Document {
	return domain.Document{
		URL:   url,
		Title: seedTitle,
		Body:  seedBody,
		Headings: []domain.Heading{
			{Level: 1, Text: seedTitle},
			{Level: 2, Text: "How to Access the Report"},
			{Level: 2, Text: "Understanding the Data"},
			{Level: 2, Text: "Key Metrics"},
		},
		Paragraphs: []string{
			"The Notification Received report shows how many notifications users have received across channels such as Push, Email, SMS, and In-app.",
			"The report gives teams insight into notification distribution and engagement patterns over a selected time period.",
			"The report displays data in several formats.",
		},
		Lists: []domain.List{
			{
				Kind: domain.ListOrdered,
				Items: []string{
					"Navigate to the Analytics dashboard",
					"Click Reports in the left sidebar",
					"Select Notification Reports from the dropdown",
					"Choose Notifications Received by Users from the list",
				},
			},
		},
		WordCount: len(strings.Fields(seedBody)),
		FetchedAt: time.Now().UTC(),
		Live:      false,
	}
}
