package smartjob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractDetail(t *testing.T) {
	doc := loadFixture(t, "detail.html")

	cand := Candidate{
		Name:       "Əli Məmmədov",
		ProfileUrl: "https://smartjob.az/resumes/12345",
	}
	ExtractDetail(context.Background(), doc, &cand)

	require.Equal(
		t,
		"Təcrübəli mühasib, maliyyə hesabatlarının hazırlanması üzrə 9 il iş təcrübəsi.",
		cand.About,
	)

	// a level may itself contain the separator, only the first one splits
	require.Equal(t, []Language{
		{Language: "Azərbaycan", Level: "Ana dili"},
		{Language: "English", Level: "Fluent—Extra"},
	}, cand.Languages)

	require.Equal(t, []Education{
		{
			Level:       "Bakalavr",
			Institution: "Bakı Dövlət Universiteti",
			Year:        "2010 - 2014",
			Faculty:     "İqtisadiyyat",
			Field:       "Mühasibat uçotu",
		},
		{Institution: "ADA University"},
	}, cand.Education)

	require.Equal(t, []Experience{
		{Company: "PASHA Bank", Duration: "2018 - 2023", Position: "Baş mühasib"},
		{Company: "Kapital Bank", Position: "Mühasib"},
	}, cand.Experience)

	require.Equal(t, []string{"1C", "Excel"}, cand.Skills)

	require.Equal(t, "+994 50 123 45 67", cand.Phone)
	require.Equal(t, "32", cand.Age)
	require.Equal(t, "9 il", cand.WorkExperience)
	require.Equal(t, "Ali", cand.EducationLevel)

	// listing fields are left alone
	require.Equal(t, "Əli Məmmədov", cand.Name)
	require.Equal(t, "https://smartjob.az/resumes/12345", cand.ProfileUrl)
}

func TestExtractDetailIdempotent(t *testing.T) {
	doc := loadFixture(t, "detail.html")

	once := Candidate{Name: "Əli Məmmədov"}
	ExtractDetail(context.Background(), doc, &once)

	twice := once
	ExtractDetail(context.Background(), doc, &twice)
	require.Equal(t, once, twice)
}

func TestExtractDetailWrappedSections(t *testing.T) {
	doc := loadFixture(t, "detail_nested.html")

	// section bodies sit inside wrapper divs, not as direct siblings
	// of their headings
	cand := Candidate{Name: "Rəşad Həsənov"}
	ExtractDetail(context.Background(), doc, &cand)

	require.Equal(t, "Proqram təminatı üzrə mühəndis.", cand.About)
	require.Equal(t, []Education{{Institution: "Bakı Dövlət Universiteti"}}, cand.Education)
	require.Equal(t, []Experience{{Company: "ABB", Position: "Mühəndis"}}, cand.Experience)
}

func TestExtractDetailMissingSections(t *testing.T) {
	doc := loadFixture(t, "detail_no_skills.html")

	cand := Candidate{Name: "Leyla Quliyeva"}
	ExtractDetail(context.Background(), doc, &cand)

	// absent sections come back present-but-empty, never nil
	require.NotNil(t, cand.Skills)
	require.Empty(t, cand.Skills)
	require.NotNil(t, cand.Education)
	require.Empty(t, cand.Education)
	require.NotNil(t, cand.Experience)
	require.Empty(t, cand.Experience)
	require.Empty(t, cand.About)

	require.Equal(t, []Language{{Language: "Rus", Level: "Orta"}}, cand.Languages)
	require.Equal(t, "27", cand.Age)
	require.Empty(t, cand.Phone)
}
