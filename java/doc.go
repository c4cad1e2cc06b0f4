// Package java finds Java runtimes installed on the local machine.
//
// A quick search looks one level deep in the usual installation
// directories (/usr/lib/jvm, ~/.jdks, JAVA_HOME and friends, or Program
// Files on Windows) and at the java executables on PATH. A deep search also
// walks /opt, /usr/local, SDKMAN candidates and, on Windows, the user's
// download and document folders.
//
// Every directory with bin/java (bin/java.exe on Windows) is reported once,
// sorted by path. Publisher and structure are guessed from the path.
package java
