// Package align locates each recorded chapter's content in the finished
// video's subtitle track and reports a calibrated confidence per chapter.
//
// Chapters are matched in three stages. A greedy phrase search tries literal
// containment of the transcript's opening words at several window sizes and
// offsets; when that misses, a fuzzy pass combines trigram-overlap, Jaro, and
// Sorensen-Dice similarity behind a hard acceptance gate. Two correction
// passes then run in fixed order: collision resolution (multiple chapters
// claiming one segment) and an order-consistency check (a chapter landing
// earlier in time than a higher-numbered chapter).
//
// The matchers are deterministic by construction: first hit wins under a
// fixed iteration order rather than scoring all candidates and picking a
// global best, and that tie-break order is part of the contract. Ambiguous
// or unmatched chapters are never dropped; they surface as low_confidence or
// not_found so a human reviewer sees exactly what needs manual correction.
package align
