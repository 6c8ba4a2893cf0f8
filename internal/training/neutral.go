package training

// neutralSeedReviews is the fixed supplementary set of neutral-sentiment
// examples mixed into the binary like/dislike dataset so the classifier can
// be trained with three classes.
var neutralSeedReviews = []string{
	"The food was okay, nothing special.",
	"Service was average, not too bad.",
	"It was just fine, not great, not terrible.",
	"The restaurant is okay for a casual visit.",
	"I felt neutral about the whole experience.",
	"Nothing stood out, but nothing was bad either.",
	"It was an average dining experience.",
	"Food and service were neither good nor bad.",
	"The ambiance was acceptable.",
	"Just an ordinary restaurant visit.",
	"It met my expectations but didn't impress.",
	"A standard place for a quick meal.",
	"Nothing noteworthy happened during my visit.",
	"It was decent but not memorable.",
	"Neither satisfied nor dissatisfied.",
	"Average quality food and service.",
	"It was okay, nothing extraordinary.",
	"The restaurant experience was moderate.",
	"Food and service were fine, nothing more.",
	"I have no strong feelings about this place.",
	"The experience was typical, nothing special.",
	"I felt indifferent about the visit.",
	"It was a standard experience, nothing unique.",
	"Nothing to complain about, but nothing exciting either.",
	"The service and food were acceptable.",
	"The restaurant was fine for a casual meal.",
	"Average experience, neither good nor bad.",
	"I have no particular opinion on this visit.",
	"It was an unremarkable dining experience.",
	"Nothing exceptional happened during my visit.",
	"It was just another restaurant experience.",
	"I felt neutral throughout the meal.",
	"The place was okay, neither impressive nor terrible.",
	"Food quality was fine, nothing more.",
	"Service was average, nothing noteworthy.",
	"It met basic expectations, no more.",
	"The restaurant was alright, nothing special.",
	"Nothing remarkable about the experience.",
	"The ambiance was fine, nothing more.",
	"It was an average visit to the restaurant.",
	"Food and service were okay, nothing else.",
	"I didn't have strong feelings about the experience.",
	"The place was satisfactory for a casual meal.",
	"It was a normal, average dining experience.",
	"Nothing stood out during my visit.",
	"I have a neutral opinion about this place.",
	"The restaurant was standard, nothing unusual.",
	"It was okay, just like any other restaurant.",
	"Service and food were acceptable but not great.",
	"The experience was moderate and neutral.",
	"I found the visit neither good nor bad.",
	"The place was fine, nothing extraordinary.",
	"Average quality, typical restaurant experience.",
	"I felt neither happy nor disappointed.",
	"It was a neutral dining experience overall.",
	"Nothing particularly good or bad about it.",
	"The restaurant met expectations but didn't exceed them.",
	"It was just an ordinary meal, nothing more.",
	"The food and service were okay, nothing special.",
	"I felt indifferent about the restaurant.",
	"The experience was mediocre, nothing exciting.",
	"Nothing stood out positively or negatively.",
	"It was a standard visit, nothing remarkable.",
	"The service and food were typical and average.",
	"It was a casual visit, neither good nor bad.",
	"I felt neutral during my dining experience.",
	"The restaurant was satisfactory but unremarkable.",
	"It was an average experience, nothing exceptional.",
	"Food and service were adequate, nothing more.",
	"Nothing unusual happened during the visit.",
	"The ambiance and food were acceptable.",
	"I didn't have any strong opinions about it.",
	"It was an ordinary dining experience.",
	"The restaurant met basic expectations.",
	"Nothing noteworthy occurred during my visit.",
	"It was fine, neither good nor bad.",
	"The experience was standard, nothing memorable.",
	"I felt neutral about the whole dining experience.",
	"Service and food were average and typical.",
	"It was just another visit to a restaurant.",
	"Nothing special happened, it was okay.",
	"The restaurant was neither good nor bad.",
	"I had a neutral experience overall.",
	"It met my expectations but was not exciting.",
	"Average visit, nothing outstanding.",
	"Food and service were fine, just average.",
	"It was an unremarkable experience.",
	"I felt neither pleased nor disappointed.",
	"The restaurant was adequate for a casual meal.",
	"It was an ordinary experience, nothing more.",
	"Nothing stood out positively or negatively.",
	"The ambiance and service were acceptable.",
	"I had no strong feelings about the restaurant.",
	"It was a neutral experience, nothing extraordinary.",
	"Food and service met expectations but didn't impress.",
	"The restaurant was okay, nothing remarkable.",
	"It was a typical visit to a restaurant.",
	"I felt indifferent about the dining experience.",
	"The experience was moderate and standard.",
	"Nothing exciting or disappointing occurred.",
}

// NeutralSeedReviews returns a copy of the neutral example set.
func NeutralSeedReviews() []string {
	out := make([]string, len(neutralSeedReviews))
	copy(out, neutralSeedReviews)
	return out
}
