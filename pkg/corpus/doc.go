/*
Package corpus keeps named source texts in a SQLite database so they can be
fed to the markov package without going through the filesystem.

Only source text is stored. Models are always rebuilt from it.
*/
package corpus
