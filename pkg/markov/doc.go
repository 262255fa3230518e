/*
Package markov builds order-K character Markov models of a source text.

A model maps every k-gram (a run of exactly K characters) of the normalized
source to the sequence of characters observed directly after it. Repeated
followers are kept, so drawing uniformly from that sequence samples the next
character in proportion to how often it followed the k-gram in the source.

Models are built once by New, NewFromReader or NewFromFile and are read-only
afterwards. Randomness is injected with WithRand so that sampling can be made
reproducible; driving a text-generation loop is left to the caller.
*/
package markov
