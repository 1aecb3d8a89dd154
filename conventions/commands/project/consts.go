package project

const (
	gradleEnvPrefixLen = 19

	// File names
	gradlePropertiesFileName = "gradle.properties"
	buildGradleFileName      = "build.gradle"
	buildGradleKtsFileName   = "build.gradle.kts"
	settingsGradleFileName   = "settings.gradle"
	settingsGradleKtsName    = "settings.gradle.kts"

	// Environment variables
	envGradleOpts    = "GRADLE_OPTS"
	envJavaOpts      = "JAVA_OPTS"
	envProjectPrefix = "ORG_GRADLE_PROJECT_"

	// Well-known property keys
	PropGroup       = "group"
	PropVersion     = "version"
	PropArtifact    = "archivesBaseName"
	PropDescription = "description"
	PropJavaVersion = "javaVersion"
	PropLicenseName = "licenseName"
	PropLicenseURL  = "licenseUrl"
	PropDistURL     = "distributionUrl"

	// Script blocks
	blockRepositories     = "repositories"
	blockPublishing       = "publishing"
	blockUploadArchives   = "uploadArchives"
	blockDepResManagement = "dependencyResolutionManagement"
	blockExt              = "ext"
)
