package smartjob

// The markup schema for smartjob.az. Everything the extractors know
// about the site's HTML lives here, so a markup change only touches
// this file.

const (
	selListingCard     = "div.candidate-list-layout"
	selCardName        = "h4 a"
	selCardJobIcon     = "i.ti-briefcase"
	selCardCategory    = "a[href*='job_category_id']"
	selCardUpdatedIcon = "i.ti-time"
	selCardSalary      = "span.salary-val"
	selCardSocial      = "a.soc-ico"

	selDetailHeading = "h2"
	selAboutText     = "div.details-text"
	selSectionList   = "ul.trim-edu-list"
	selEntryTitle    = "h4.trim-edu-title"
	selEntryEst      = "span.title-est"
	selSkillsSidebar = "div.browse-resume-skills"
	selFactsSidebar  = "ul.ove-detail-list"
)

// Section headings and labels are in Azerbaijani on the live site.
const (
	headingAbout      = "Mənim haqqımda"
	headingLanguages  = "Dil bilikləriniz"
	headingEducation  = "Təhsil"
	headingExperience = "İş təcrübəsi"

	lastUpdatedPrefix = "Yenilənib"

	labelPhone          = "Telefon"
	labelAge            = "Yaş"
	labelWorkExperience = "İş stajı"
	labelEducationLevel = "Təhsil"

	// the em-dash the site uses between a language and its level
	languageSeparator = "—"
)
