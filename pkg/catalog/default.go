// pkg/catalog/default.go
package catalog

import "college-portal/internal/models"

// Default is the catalog shipped with the portal.
func Default() *Catalog {
	return &Catalog{
		Version: "1.0.0",
		Videos: []Video{
			{
				Entry: Entry{
					ID:          "video1",
					Title:       "How to Write a Compelling Personal Statement",
					Description: "Learn the key elements of a successful college application essay",
					URL:         "/tutorials/personal-statement",
				},
				VideoURL: "/videos/personal-statement.mp4",
				Duration: 90,
				Transcript: []models.TranscriptSegment{
					{ID: "1", Start: 0, End: 30, Text: "Welcome to our guide on writing compelling personal statements. A personal statement is your chance to tell your unique story."},
					{ID: "2", Start: 30, End: 60, Text: "Start with a hook that captures the reader's attention. This could be a meaningful moment, a challenge you overcame, or a passion that drives you."},
					{ID: "3", Start: 60, End: 90, Text: "Remember to show, don't just tell. Use specific examples and experiences to demonstrate your qualities and growth."},
				},
			},
			{
				Entry: Entry{
					ID:          "video2",
					Title:       "Financial Aid Application Guide",
					Description: "Step-by-step guide to applying for financial aid and scholarships",
					URL:         "/tutorials/financial-aid",
				},
			},
			{
				Entry: Entry{
					ID:          "video3",
					Title:       "Interview Preparation Tips",
					Description: "How to prepare for college admission interviews",
					URL:         "/tutorials/interviews",
				},
			},
		},
		Documents: []Entry{
			{
				ID:          "doc1",
				Title:       "Common Application Requirements",
				Description: "Complete list of requirements for Common App submissions",
				URL:         "/documents/common-app-requirements",
			},
			{
				ID:          "doc2",
				Title:       "Scholarship Opportunities 2024",
				Description: "Comprehensive list of available scholarships",
				URL:         "/documents/scholarships-2024",
			},
		},
	}
}
