package sites

import (
	"regexp"

	"github.com/jordan/job-tracker/internal/types"
)

// adapters is evaluated in order by Detect. "wellfound" precedes "angel" only
// in hostname terms; both map onto the same adapter.
var adapters = []*Adapter{
	{
		Key:            SiteLinkedIn,
		Platform:       types.PlatformLinkedIn,
		hostSubstrings: []string{"linkedin.com"},
		jobPagePatterns: []*regexp.Regexp{
			regexp.MustCompile(`/jobs/view/\d+`),
			regexp.MustCompile(`[?&]currentJobId=\d+`),
		},
		titleSelectors: []string{
			".jobs-unified-top-card__job-title h1",
			".job-details-jobs-unified-top-card__job-title h1",
			".jobs-unified-top-card__job-title",
			"h1.t-24",
			"h1",
		},
		companySelectors: []string{
			".jobs-unified-top-card__company-name a",
			".job-details-jobs-unified-top-card__company-name a",
			".jobs-unified-top-card__company-name",
			"a[href*=\"/company/\"]",
		},
		companyURLSelectors: []string{
			".jobs-unified-top-card__company-name a",
			"a[href*=\"/company/\"]",
		},
		locationSelectors: []string{
			".jobs-unified-top-card__bullet",
			".job-details-jobs-unified-top-card__primary-description-container span",
			".jobs-unified-top-card__workplace-type",
		},
		descriptionSelectors: []string{
			".jobs-description__content",
			".jobs-description-content__text",
			"#job-details",
			".jobs-box__html-content",
		},
		showMoreSelectors: []string{
			".jobs-description__footer-button",
			"button[aria-label*=\"more\"]",
			".show-more-less-html__button--more",
		},
	},
	{
		Key:            SiteIndeed,
		Platform:       types.PlatformIndeed,
		hostSubstrings: []string{"indeed.com"},
		jobPagePatterns: []*regexp.Regexp{
			regexp.MustCompile(`/viewjob`),
			regexp.MustCompile(`[?&]jk=[0-9a-f]+`),
		},
		titleSelectors: []string{
			"[data-testid=\"jobsearch-JobInfoHeader-title\"]",
			"h1.jobsearch-JobInfoHeader-title",
			".jobsearch-JobInfoHeader-title span",
			"h1",
		},
		companySelectors: []string{
			"[data-testid=\"inlineHeader-companyName\"] a",
			"[data-testid=\"inlineHeader-companyName\"]",
			"[data-company-name=\"true\"]",
			".jobsearch-CompanyInfoContainer a",
		},
		companyURLSelectors: []string{
			"[data-testid=\"inlineHeader-companyName\"] a",
			".jobsearch-CompanyInfoContainer a",
		},
		locationSelectors: []string{
			"[data-testid=\"inlineHeader-companyLocation\"]",
			"[data-testid=\"job-location\"]",
			".jobsearch-JobInfoHeader-subtitle div",
		},
		descriptionSelectors: []string{
			"#jobDescriptionText",
			".jobsearch-JobComponent-description",
		},
		showMoreSelectors: []string{},
	},
	{
		Key:            SiteGlassdoor,
		Platform:       types.PlatformGlassdoor,
		hostSubstrings: []string{"glassdoor.com"},
		jobPagePatterns: []*regexp.Regexp{
			regexp.MustCompile(`/job-listing/`),
			regexp.MustCompile(`/Job/`),
		},
		titleSelectors: []string{
			"[data-test=\"job-title\"]",
			".JobDetails_jobTitle__Rw_gn",
			"h1",
		},
		companySelectors: []string{
			"[data-test=\"employer-name\"]",
			".EmployerProfile_employerName__Xemli",
			".EmployerProfile_employerInfo__d8uSE",
		},
		companyURLSelectors: []string{
			"[data-test=\"employer-name\"] a",
		},
		locationSelectors: []string{
			"[data-test=\"location\"]",
			".JobDetails_location__mSg5h",
		},
		descriptionSelectors: []string{
			".JobDetails_jobDescription__uW_fK",
			"[data-test=\"jobDescriptionContent\"]",
			"#JobDescriptionContainer",
		},
		showMoreSelectors: []string{
			"[data-test=\"show-more-cta\"]",
			".JobDetails_showMore___Le6L",
		},
	},
	{
		Key:            SiteGoogle,
		Platform:       types.PlatformGoogle,
		hostSubstrings: []string{"careers.google.com", "google.com/about/careers"},
		jobPagePatterns: []*regexp.Regexp{
			regexp.MustCompile(`/jobs/results/\d+`),
		},
		titleSelectors: []string{
			"h2[itemprop=\"title\"]",
			".gc-job-detail__title",
			"h1",
		},
		companySelectors: []string{
			"[itemprop=\"hiringOrganization\"]",
		},
		locationSelectors: []string{
			"[itemprop=\"jobLocation\"]",
			".gc-job-detail__location",
		},
		descriptionSelectors: []string{
			"[itemprop=\"description\"]",
			".gc-job-detail__description",
		},
	},
	{
		Key:            SiteDice,
		Platform:       types.PlatformDice,
		hostSubstrings: []string{"dice.com"},
		jobPagePatterns: []*regexp.Regexp{
			regexp.MustCompile(`/job-detail/`),
			regexp.MustCompile(`/jobs/detail/`),
		},
		titleSelectors: []string{
			"[data-cy=\"jobTitle\"]",
			"h1.jobTitle",
			"h1",
		},
		companySelectors: []string{
			"[data-cy=\"companyNameLink\"]",
			".employer a",
		},
		companyURLSelectors: []string{
			"[data-cy=\"companyNameLink\"]",
		},
		locationSelectors: []string{
			"[data-cy=\"location\"]",
			".location",
		},
		descriptionSelectors: []string{
			"[data-cy=\"jobDescription\"]",
			"#jobdescSec",
		},
	},
	{
		Key:            SiteMonster,
		Platform:       types.PlatformMonster,
		hostSubstrings: []string{"monster.com"},
		jobPagePatterns: []*regexp.Regexp{
			regexp.MustCompile(`/job-openings/`),
		},
		titleSelectors: []string{
			"[data-testid=\"jobTitle\"]",
			"h1.job-title",
			"h1",
		},
		companySelectors: []string{
			"[data-testid=\"company\"]",
			".job-company-name",
		},
		locationSelectors: []string{
			"[data-testid=\"jobDetailLocation\"]",
			".job-location",
		},
		descriptionSelectors: []string{
			"[data-testid=\"svx-description-container-inner\"]",
			".job-description",
		},
	},
	{
		Key:            SiteZipRecruiter,
		Platform:       types.PlatformZipRecruiter,
		hostSubstrings: []string{"ziprecruiter.com"},
		jobPagePatterns: []*regexp.Regexp{
			regexp.MustCompile(`/jobs/`),
			regexp.MustCompile(`/c/.+/Job/`),
		},
		titleSelectors: []string{
			"h1.job_title",
			"[class*=\"JobTitle\"]",
			"h1",
		},
		companySelectors: []string{
			"a.hiring_company",
			"[class*=\"HiringCompany\"]",
		},
		locationSelectors: []string{
			"[class*=\"Location\"]",
			".hiring_location",
		},
		descriptionSelectors: []string{
			".job_description",
			"[class*=\"JobDescription\"]",
		},
	},
	{
		Key:            SiteStackOverflow,
		Platform:       types.PlatformStackOverflow,
		hostSubstrings: []string{"stackoverflow.com"},
		jobPagePatterns: []*regexp.Regexp{
			regexp.MustCompile(`/jobs/\d+`),
		},
		titleSelectors: []string{
			"h1.fs-headline1",
			".job-details--header h1",
			"h1",
		},
		companySelectors: []string{
			".job-details--header .fc-black-700 a",
			".employer",
		},
		locationSelectors: []string{
			".job-details--header .fc-black-500",
		},
		descriptionSelectors: []string{
			"#overview-items",
			".job-details__spaced",
		},
	},
	{
		Key:            SiteWellfound,
		Platform:       types.PlatformWellfound,
		hostSubstrings: []string{"wellfound.com", "angel.co"},
		jobPagePatterns: []*regexp.Regexp{
			regexp.MustCompile(`/jobs/\d+`),
			regexp.MustCompile(`/l/[^/]+/jobs`),
		},
		titleSelectors: []string{
			"h1[class*=\"JobTitle\"]",
			".styles_title__",
			"h1",
		},
		companySelectors: []string{
			"a[href*=\"/company/\"] h2",
			"a[href*=\"/company/\"]",
		},
		companyURLSelectors: []string{
			"a[href*=\"/company/\"]",
		},
		locationSelectors: []string{
			"[class*=\"location\"]",
		},
		descriptionSelectors: []string{
			"[class*=\"description\"]",
			"#job-description",
		},
	},
}

// genericAdapter is the last resort for unlisted sites: class-name substring
// heuristics plus bare structural elements.
var genericAdapter = &Adapter{
	Key:      SiteGeneric,
	Platform: types.PlatformOther,
	titleSelectors: []string{
		"h1[class*=\"title\"]",
		"[class*=\"job-title\"]",
		"[class*=\"jobTitle\"]",
		"h1",
	},
	companySelectors: []string{
		"[class*=\"company-name\"]",
		"[class*=\"companyName\"]",
		"[class*=\"company\"] a",
		"[class*=\"employer\"]",
	},
	companyURLSelectors: []string{
		"[class*=\"company\"] a",
	},
	locationSelectors: []string{
		"[class*=\"location\"]",
	},
	descriptionSelectors: []string{
		"[class*=\"job-description\"]",
		"[class*=\"jobDescription\"]",
		"[class*=\"description\"]",
		"main",
		"article",
	},
	showMoreSelectors: []string{
		"button[class*=\"show-more\"]",
		"a[class*=\"show-more\"]",
	},
}
