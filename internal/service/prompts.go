package service

import "fmt"

const chatPromptTemplate = `You are an occupational safety training assistant. Answer the worker's
question using only the knowledge base context below. Answer in plain text,
be concise and practical. If the context does not cover the question, say so.

Context:
%s

Question: %s

Answer:`

const quizPromptTemplate = `You are an occupational safety instructor. Create 5 unique multiple-choice
quiz questions that check understanding of the training material below. Each
question must have exactly four answer options with a single correct one.

Training material:
%s

%s`

const scenarioPromptTemplate = `You are an occupational safety instructor. Create one realistic workplace
incident scenario: describe the situation, then ask what the worker or the
responsible person should do, with exactly four action options and a single
correct one.

%s`

func buildChatPrompt(context, question string) string {
	return fmt.Sprintf(chatPromptTemplate, context, question)
}

func buildQuizPrompt(context, formatInstructions string) string {
	return fmt.Sprintf(quizPromptTemplate, context, formatInstructions)
}

func buildScenarioPrompt(formatInstructions string) string {
	return fmt.Sprintf(scenarioPromptTemplate, formatInstructions)
}
