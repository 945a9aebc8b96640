package pipeline

import (
	"fmt"
	"strings"
	"time"

	"covergen-utils/pkg/models"
)

// The four style templates. Each is an independent pure formatting function
// producing a complete letter: header, salutation, body paragraphs, closing
// and signature. Every template must read as complete prose when the
// optional fields (education, work history, summary) are empty.

// composeProfessional renders the formal default style: full contact block,
// recipient block, conservative phrasing.
func composeProfessional(info models.ResumeInfo, job models.JobDetails, analysis models.JobAnalysis, instructions string, now time.Time) string {
	var b strings.Builder

	if info.Name != "" {
		b.WriteString(info.Name + "\n")
	}
	if contact := contactLine(info); contact != "" {
		b.WriteString(contact + "\n")
	}
	if info.Address != "" {
		b.WriteString(info.Address + "\n")
	}
	b.WriteString("\n" + letterDate(now) + "\n\n")
	b.WriteString("Hiring Manager\n" + job.CompanyName + "\n\n")
	b.WriteString("Dear Hiring Manager,\n\n")

	b.WriteString(fmt.Sprintf("I am writing to express my strong interest in the %s position at %s.", job.JobTitle, job.CompanyName))
	if skills := joinWithAnd(firstN(analysis.MatchedSkills, 3)); skills != "" {
		b.WriteString(fmt.Sprintf(" With my background in %s, I am confident I would be a valuable addition to your team.", skills))
	} else {
		b.WriteString(" I am confident my background would make me a valuable addition to your team.")
	}
	b.WriteString("\n\n")

	b.WriteString("I come to this role " + experienceClause(info.Experience) + ".")
	if hasRealWorkHistory(info) {
		b.WriteString(" My recent experience includes: " + ensureSentence(info.WorkHistory[0]))
	}
	if info.Education != "" {
		b.WriteString(" My educational background includes " + ensureSentence(info.Education))
	}
	if info.Summary != "" {
		b.WriteString(" " + ensureSentence(info.Summary))
	}
	b.WriteString("\n\n")

	if resp := joinWithAnd(analysis.KeyResponsibilities); resp != "" {
		b.WriteString(fmt.Sprintf("I am prepared to take on the core responsibilities of the role, including %s.", resp))
	} else {
		b.WriteString("I am prepared to take on the core responsibilities of the role from day one.")
	}
	if insights := ensureSentence(analysis.CompanyInsights); insights != "" {
		b.WriteString(" What drew me to " + job.CompanyName + ": " + insights)
	}
	b.WriteString("\n\n")

	if instructions != "" {
		b.WriteString(ensureSentence(instructions) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("I would welcome the opportunity to discuss how my background and skills can contribute to %s. Thank you for your time and consideration.\n\n", job.CompanyName))
	b.WriteString("Sincerely,\n")
	b.WriteString(signature(info))
	b.WriteString("\n")

	return b.String()
}

// composeModern renders a lighter style: compact header, first-person
// contractions, a bullet list of the matched skills.
func composeModern(info models.ResumeInfo, job models.JobDetails, analysis models.JobAnalysis, instructions string, now time.Time) string {
	var b strings.Builder

	if info.Name != "" {
		b.WriteString(info.Name + "\n")
	}
	if contact := contactLine(info); contact != "" {
		b.WriteString(contact + "\n")
	}
	b.WriteString("\n" + letterDate(now) + "\n\n")
	b.WriteString("Hello " + job.CompanyName + " team,\n\n")

	b.WriteString(fmt.Sprintf("I'm excited to apply for the %s role at %s. I come to it %s, and I'd love the chance to put that to work for you.\n\n", job.JobTitle, job.CompanyName, experienceClause(info.Experience)))

	skills := firstN(analysis.MatchedSkills, 5)
	b.WriteString("Here's what I bring:\n")
	if len(skills) == 0 {
		b.WriteString("- A fast-learning, collaborative approach\n")
	}
	for _, skill := range skills {
		b.WriteString("- " + skill + "\n")
	}
	b.WriteString("\n")

	if hasRealWorkHistory(info) {
		b.WriteString("Most recently: " + ensureSentence(info.WorkHistory[0]) + " ")
	}
	if resp := joinWithAnd(analysis.KeyResponsibilities); resp != "" {
		b.WriteString(fmt.Sprintf("From the posting, I'm ready to dive straight into %s.", resp))
	} else {
		b.WriteString("I'm ready to dive straight into the work described in the posting.")
	}
	if info.Education != "" {
		b.WriteString(" On the education side: " + ensureSentence(info.Education))
	}
	b.WriteString("\n\n")

	if instructions != "" {
		b.WriteString(ensureSentence(instructions) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("I'd love to talk about what I could contribute at %s. Thanks for reading!\n\n", job.CompanyName))
	b.WriteString("Best regards,\n")
	b.WriteString(signature(info))
	b.WriteString("\n")

	return b.String()
}

// composeCreative renders the attention-grabbing style: question hook,
// short punchy paragraphs, SPECIAL NOTE line for instructions.
func composeCreative(info models.ResumeInfo, job models.JobDetails, analysis models.JobAnalysis, instructions string, now time.Time) string {
	var b strings.Builder

	if info.Name != "" {
		b.WriteString(info.Name + "\n")
	}
	if contact := contactLine(info); contact != "" {
		b.WriteString(contact + "\n")
	}
	b.WriteString("\n" + letterDate(now) + "\n\n")
	b.WriteString("Dear " + job.CompanyName + " Hiring Team,\n\n")

	hook := "curiosity"
	if len(analysis.MatchedSkills) > 0 {
		hook = analysis.MatchedSkills[0]
	}
	b.WriteString(fmt.Sprintf("What does it take to thrive as a %s at %s? I believe the answer starts with %s, and that is exactly where I live.\n\n", job.JobTitle, job.CompanyName, hook))

	if skills := joinWithAnd(firstN(analysis.MatchedSkills, 4)); skills != "" {
		b.WriteString(fmt.Sprintf("My toolkit: %s. ", skills))
	}
	b.WriteString("I come to the table " + experienceClause(info.Experience) + ".")
	if info.Summary != "" {
		b.WriteString(" In my own words: " + ensureSentence(info.Summary))
	} else if hasRealWorkHistory(info) {
		b.WriteString(" A snapshot of my story so far: " + ensureSentence(info.WorkHistory[0]))
	}
	b.WriteString("\n\n")

	if len(analysis.KeyResponsibilities) > 0 {
		b.WriteString("The parts of this role that light me up:\n")
		for _, resp := range analysis.KeyResponsibilities {
			b.WriteString("* " + resp + "\n")
		}
		b.WriteString("\n")
	}

	if insights := ensureSentence(analysis.CompanyInsights); insights != "" {
		b.WriteString("And the company itself? " + insights + " Count me in.\n\n")
	}

	if instructions != "" {
		b.WriteString("SPECIAL NOTE: " + instructions + "\n\n")
	}

	b.WriteString(fmt.Sprintf("Let's talk about what we could build together at %s.\n\n", job.CompanyName))
	b.WriteString("With enthusiasm,\n")
	b.WriteString(signature(info))
	b.WriteString("\n")

	return b.String()
}

// composeTraditional renders the most conservative style: full address
// block, no date stamp, long-form paragraphs, formal salutation and close.
func composeTraditional(info models.ResumeInfo, job models.JobDetails, analysis models.JobAnalysis, instructions string) string {
	var b strings.Builder

	if info.Name != "" {
		b.WriteString(info.Name + "\n")
	}
	if info.Address != "" {
		b.WriteString(info.Address + "\n")
	}
	if contact := contactLine(info); contact != "" {
		b.WriteString(contact + "\n")
	}
	b.WriteString("\nHiring Manager\n" + job.CompanyName + "\n\n")
	b.WriteString("Dear Sir or Madam,\n\n")

	b.WriteString(fmt.Sprintf("Please accept this letter as my formal application for the position of %s with %s. Having reviewed the requirements of the role, I am confident that my qualifications make me a strong candidate for your consideration.\n\n", job.JobTitle, job.CompanyName))

	b.WriteString("I approach this opportunity " + experienceClause(info.Experience) + ".")
	if skills := joinWithAnd(firstN(analysis.MatchedSkills, 3)); skills != "" {
		b.WriteString(fmt.Sprintf(" My professional competencies include %s, each of which I understand to be relevant to this position.", skills))
	}
	if hasRealWorkHistory(info) {
		b.WriteString(" My employment history includes the following: " + ensureSentence(info.WorkHistory[0]))
	}
	if info.Education != "" {
		b.WriteString(" With respect to my education, " + ensureSentence(info.Education))
	}
	b.WriteString("\n\n")

	if resp := joinWithAnd(analysis.KeyResponsibilities); resp != "" {
		b.WriteString(fmt.Sprintf("I am fully prepared to discharge the duties of the position, including %s, with diligence and professionalism.\n\n", resp))
	} else {
		b.WriteString("I am fully prepared to discharge the duties of the position with diligence and professionalism.\n\n")
	}

	if instructions != "" {
		b.WriteString(ensureSentence(instructions) + "\n\n")
	}

	b.WriteString(fmt.Sprintf("I thank you for your consideration and would be honoured to discuss my candidacy further at your convenience. I may be reached through the contact details provided above.\n\nYours faithfully,\n%s\n", signature(info)))

	return b.String()
}
