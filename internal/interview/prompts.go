package interview

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Daksharma90/AI-Interviewer/pkg/model"
)

// resumeSummary renders the profile block shared by every prompt.
func resumeSummary(profile model.CandidateProfile) string {
	projects, _ := json.Marshal(profile.Projects)
	return fmt.Sprintf(`Candidate Name: %s
Experience: %s
Skills: %s
Projects: %s
Education: %s`,
		valueOrNA(profile.Name),
		valueOrNA(profile.Experience),
		valueOrNA(strings.Join(profile.Skills, ", ")),
		string(projects),
		valueOrNA(profile.Education),
	)
}

func valueOrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// BuildQuestionPrompt assembles the generation request for the next
// question: profile context, the stage's instruction template, and an
// explicit ban on repeating any previously asked question. The model is
// told to emit the raw question text only.
func BuildQuestionPrompt(profile model.CandidateProfile, domain string, stage model.Stage, askedTexts []string) string {
	spec := specFor(stage)

	previous := "None"
	if len(askedTexts) > 0 {
		lines := make([]string, len(askedTexts))
		for i, text := range askedTexts {
			lines[i] = "- " + text
		}
		previous = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`You are a highly professional, insightful, and experienced AI Interviewer. Your current task is to conduct an interview for a %s role.
Your goal is to assess the candidate thoroughly by asking a sequence of relevant and progressively challenging questions.

Candidate's Summarized Resume Information:
%s

Previous questions asked so far in this interview (avoid asking these or very similar ones again):
%s

You are now about to ask question number %d in this interview.
This question should be: %s

Specific instruction for generating THIS question:
%s

General Guidelines for ALL questions you generate:
1. Clarity and Conciseness: The question must be absolutely clear, concise, and unambiguous.
2. Open-Ended: Frame questions to encourage detailed and thoughtful answers, not simple yes/no responses.
3. Relevance: Ensure the question is highly relevant to the candidate's profile (resume), the %s domain, and the current stage of a professional interview.
4. NO REPETITION: CRITICALLY IMPORTANT - DO NOT repeat any question from the "Previous questions asked so far" list, or a very close variation of it. Check carefully.
5. Output Format: Generate ONLY the question text itself. Do NOT include any surrounding conversational text, preambles, or any markdown/formatting. Just the raw question.
6. Professional Tone: Maintain a consistently professional, respectful, and courteous tone throughout.
7. Progression: Questions should generally progress in depth or type as the interview proceeds, following standard interview structures.`,
		domain, resumeSummary(profile), previous, len(askedTexts)+1, spec.Description, spec.Instruction, domain)
}

// buildEvaluationPrompt assembles the per-answer scoring request.
func buildEvaluationPrompt(question, transcript string, profile model.CandidateProfile, domain string) string {
	return fmt.Sprintf(`You are an AI Interviewer evaluating an answer for a %s role.
Here is the question asked: "%s"
Here is the candidate's transcribed answer: "%s"
Here is the candidate's summarized resume information for context:
%s

Please provide:
1. Detailed, constructive feedback on the answer. Consider relevance, clarity, depth of understanding,
   technical accuracy (if applicable), use of examples, structure, and professionalism.
2. A score for this answer from 0.0 to 1.0, where 1.0 is an excellent, comprehensive, and accurate answer,
   and 0.0 is completely irrelevant, silent, or nonsensical.
   If the answer was effectively silent or extremely short due to a timeout or no input, assign a very low score (e.g., 0.0 to 0.2).

Provide the output as a JSON object with the following keys:
{
    "feedback": "string (detailed, constructive feedback)",
    "score": "float (0.0 to 1.0, rounded to one decimal place)"
}`,
		domain, question, transcript, resumeSummary(profile))
}

// buildOverallPrompt assembles the final report synthesis request from
// the full answer log.
func buildOverallPrompt(answers []model.AnswerRecord, profile model.CandidateProfile, domain, averageScore string) string {
	var history strings.Builder
	for i, entry := range answers {
		fmt.Fprintf(&history, "--- Question %d (%s) ---\n", i+1, entry.Stage)
		fmt.Fprintf(&history, "Q: %s\n", entry.QuestionText)
		fmt.Fprintf(&history, "A: %s\n", entry.Transcript)
		fmt.Fprintf(&history, "Feedback on A: %s\n", entry.Feedback)
		fmt.Fprintf(&history, "Score for A: %.1f/1.0\n\n", entry.Score)
	}

	return fmt.Sprintf(`You are an AI Interviewer tasked with providing a comprehensive overall evaluation for a candidate who has completed an interview for a %s role.
Base your evaluation on their summarized resume and the detailed interview history provided below, including the types of questions asked.

Candidate Resume Summary:
%s

Interview History (Questions with types, Candidate's Answers, Feedback, Scores):
%s
Average Score Across All Answers: %s

Please provide your final evaluation as a JSON object with three keys:
1. "overall_performance": A concise (2-4 sentences) summary of the candidate's performance.
   Consider their performance across different question types (e.g., resume-based, technical, behavioral).
   Highlight key strengths demonstrated and overall impression. Mention consistency if applicable.
2. "weak_points": Specific, actionable areas where the candidate struggled or could improve (2-3 bullet points).
   Focus on concrete examples from the interview history if possible and refer to question types if relevant.
3. "improvements": Concrete, actionable suggestions for how the candidate can improve in the identified weak points (2-3 bullet points).
   Suggest specific actions, resources, or practice methods if appropriate.

Ensure the output is valid JSON. For weak_points and improvements, use newline characters (\n) to separate bullet points.`,
		domain, resumeSummary(profile), history.String(), averageScore)
}
