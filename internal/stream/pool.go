package stream

import (
	"math/rand"
	"sync"
)

// textPool cycles through a fixed set of texts in shuffled order and
// reshuffles after each full pass, so short sessions see varied input and
// long sessions never repeat a stale ordering.
type textPool struct {
	mu    sync.Mutex
	texts []string
	index int
}

func newTextPool(texts []string) *textPool {
	pool := &textPool{texts: make([]string, len(texts))}
	copy(pool.texts, texts)
	pool.shuffle()
	return pool
}

func newDefaultPool() *textPool {
	return newTextPool(feedPool)
}

// Next returns the next text in the current pass.
func (p *textPool) Next() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	text := p.texts[p.index]
	p.index++
	if p.index == len(p.texts) {
		p.index = 0
		p.shuffle()
	}
	return text
}

func (p *textPool) Len() int {
	return len(p.texts)
}

func (p *textPool) shuffle() {
	rand.Shuffle(len(p.texts), func(i, j int) {
		p.texts[i], p.texts[j] = p.texts[j], p.texts[i]
	})
}

// feedPool is the built-in simulated feed covering the sentiment and emotion
// ranges the pipeline classifies.
var feedPool = []string{
	// Positive
	"This is absolutely incredible! I'm so happy with how things turned out",
	"Just got the best news ever. Life is good!",
	"Feeling grateful for all the amazing people in my life. So blessed!",
	"The new phone update is smooth as butter. Love it!",
	"Brilliant customer support today - quick, helpful, and kind. 10/10!",
	"Absolutely stunning performance by the whole team. Proud of everyone!",
	"The sunrise this morning was magical. Nature is incredible",
	"Best coffee I've ever had. This place is outstanding",
	"Just finished a great book. Highly recommend it to everyone!",
	"My new laptop is so fast. Productivity through the roof",
	"The event was perfectly organized. Had such a wonderful time!",
	"This movie was a masterpiece from start to finish",
	"Finally got a promotion! Hard work always pays off",
	"The food here is unbelievable. Five stars without question!",
	"New feature update is exactly what users needed. Well done team!",
	"Incredible comeback by the team. That last-minute goal was legendary",
	"The new album is fire from track one to the last. Pure art",
	"Exceeded every expectation. This brand never lets me down.",
	"Hired a new developer today who is absolutely brilliant",
	"This product literally changed my life. Cannot recommend it enough!",
	// Negative
	"Terrible experience at the store today. Won't be going back.",
	"I'm so frustrated with this app. It keeps crashing every hour",
	"Awful service. Waited 45 minutes and no one came to help.",
	"The new update completely broke everything. This is a disaster.",
	"Deeply disappointed with the decision made by management today.",
	"Total waste of money. Product stopped working after two days.",
	"The internet is unbearably slow right now. Can't get any work done.",
	"The whole flight experience was a nightmare. Never again.",
	"Customer support took 3 days to reply and still no solution.",
	"This is unacceptable. The error message gave zero useful information.",
	"Very poor quality for the price. I expected much better.",
	"App keeps logging me out. Losing all my data is infuriating!",
	"The traffic today was absolutely horrendous. Took 2 hours to get home.",
	"So disappointed in this team. They played terribly in the final.",
	"Worst meal I've ever had. Cold, bland, and overpriced.",
	"The rollout of this feature was handled horribly.",
	"Absolutely broken. Nothing works right after the latest patch.",
	"No apology, no refund, no explanation. Shocking customer service.",
	"The event was disorganized and uncomfortable. Such a letdown.",
	"Lost all my saved data after the latest update. Furious!",
	// Neutral
	"The meeting has been rescheduled to next Tuesday at 10 AM.",
	"The new policy will take effect starting next month.",
	"There are now 500 reviews on the product page.",
	"The team is currently reviewing the submitted documents.",
	"New dataset was uploaded to the server at 11:00 AM.",
	"The report covers the Q3 performance metrics.",
	"Three new candidates were shortlisted for the role.",
	"The system has been updated to version 3.4.1.",
	"The weather forecast shows rain for the remainder of the week.",
	"Users can now access the new dashboard from the sidebar.",
	"The project delivery date has been confirmed for March 15.",
	"A maintenance window is scheduled for Sunday 2-4 AM.",
	"Total usage hit 1 million requests this week.",
	"The backend API is returning a 200 status for all endpoints.",
	"Branch deployment completed at 14:32 UTC.",
	"The analytics pipeline processed 50,000 records overnight.",
	"Three pull requests are currently under code review.",
	"Today's standup highlighted the progress on the new feature.",
	"The release notes have been published on the internal wiki.",
	"Data migration from the old schema completed successfully.",
	// Joy
	"Just got engaged! The happiest moment of my life",
	"We won the championship! Tears of joy everywhere",
	"Baby's first steps today. I'm overwhelmed with happiness.",
	"Finally on vacation! Sun, beach, and no emails",
	"Surprise party was perfect. I had no idea! Love my friends.",
	// Anger
	"I am absolutely DONE with this company. Enough is enough!",
	"How dare they charge me extra without notice. UNACCEPTABLE.",
	"Hours on hold and hung up on. This is outrageous behavior.",
	"The negligence here is criminal. People could have been hurt!",
	"Why is nobody being held accountable?? This is infuriating.",
	// Sadness
	"Just found out my grandfather passed away. I'm heartbroken",
	"Our dog is gone. The house feels so empty right now.",
	"Didn't get the job. Really thought this was the one.",
	"It's been a tough week. Feeling really low and drained.",
	"Miss my old friends so much. Wish we were still close.",
	// Fear
	"The earthquake alert went off. I'm really scared right now.",
	"Doctor found something on the scan. Anxiety through the roof.",
	"Driving in this storm is terrifying. Please stay safe!",
	"News headlines are getting more frightening every single day.",
	"Not sure if we'll make it through. Everything feels uncertain.",
	// Surprise
	"I had NO idea this was happening. Absolutely blown away!",
	"Wait, they announced a sequel?! This changes everything!",
	"The results shocked everyone in the room. Nobody saw that coming.",
	"Plot twist nobody expected. My jaw literally dropped.",
	"She walked in and the reaction was priceless. Total shock!",
}
